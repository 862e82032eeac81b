package settings

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.Equal(t, "pre-commit", s.Runner)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 2*time.Minute, s.RemoteTimeoutDuration())
}

func TestTOMLRoundTrip(t *testing.T) {
	doc := []byte(`
cache_dir = "/var/cache/hookman"
runner = "pre-commit"
log_level = "debug"
remote_timeout = "90s"
`)
	s := Defaults()
	require.NoError(t, toml.Unmarshal(doc, s))

	assert.Equal(t, "/var/cache/hookman", s.CacheDir)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 90*time.Second, s.RemoteTimeoutDuration())
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("HOOKMAN_RUNNER", "my-runner")
	t.Setenv("HOOKMAN_LOG_LEVEL", "warn")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "my-runner", s.Runner)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestRemoteTimeoutFallback(t *testing.T) {
	s := Defaults()
	s.RemoteTimeout = "not-a-duration"
	assert.Equal(t, 2*time.Minute, s.RemoteTimeoutDuration())

	s.RemoteTimeout = "-5s"
	assert.Equal(t, 2*time.Minute, s.RemoteTimeoutDuration())
}
