package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickLsRemoteSHA(t *testing.T) {
	// Annotated tag: the peeled line carries the commit
	output := "aaaa111122223333444455556666777788889999\trefs/tags/v4.4.0\n" +
		"bbbb111122223333444455556666777788889999\trefs/tags/v4.4.0^{}\n"
	assert.Equal(t, "bbbb111122223333444455556666777788889999", pickLsRemoteSHA(output))

	// Lightweight tag: single line
	output = "cccc111122223333444455556666777788889999\trefs/tags/v1.0.0\n"
	assert.Equal(t, "cccc111122223333444455556666777788889999", pickLsRemoteSHA(output))

	// No match
	assert.Equal(t, "", pickLsRemoteSHA(""))
}

func TestParseTagRefs(t *testing.T) {
	output := "" +
		"aaaa\trefs/tags/v4.3.0\n" +
		"bbbb\trefs/tags/v4.4.0\n" +
		"cccc\trefs/tags/nightly\n" +
		"dddd\trefs/tags/23.3.0\n"

	tags := parseTagRefs(output)
	assert.Equal(t, []string{"v4.3.0", "v4.4.0", "23.3.0"}, tags)
}

func TestVersionLess(t *testing.T) {
	testCases := []struct {
		a, b string
		less bool
	}{
		{"v4.3.0", "v4.4.0", true},
		{"v4.4.0", "v4.3.0", false},
		{"v4.4.0", "v4.4.0", false},
		{"v4.9.0", "v4.10.0", true},
		{"23.1.0", "23.3.0", true},
		{"v1.0", "v1.0.1", true},
		{"v1.0-rc1", "v1.0", true},
		{"v1.0", "v1.0-rc1", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.less, versionLess(tc.a, tc.b), "%s < %s", tc.a, tc.b)
	}
}

func TestResolveRevFullSHA(t *testing.T) {
	r := NewRemote()
	sha := "19c2add1e0dbd95e5e04531d5822b6b8c905d9a2"

	resolved, err := r.ResolveRev(t.Context(), "https://github.com/psf/black", sha)
	assert.NoError(t, err)
	assert.Equal(t, sha, resolved)
}

func TestResolveRevRejectsBadInput(t *testing.T) {
	r := NewRemote()

	_, err := r.ResolveRev(t.Context(), "https://github.com/psf/black", "--upload-pack=x")
	assert.Error(t, err)

	_, err = r.ResolveRev(t.Context(), "file:///etc", "v1.0")
	assert.Error(t, err)
}
