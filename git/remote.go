package git

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/committools/hookman/command"
	"github.com/committools/hookman/errors"
)

var fullSHARegex = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Remote resolves revisions against git remotes without a local checkout.
type Remote struct {
	builder *command.SafeBuilder
}

// NewRemote creates a Remote backed by the default safe command builder.
func NewRemote() *Remote {
	return &Remote{builder: command.NewSafeBuilder()}
}

// NewRemoteWithExecutor creates a Remote with a custom command executor.
func NewRemoteWithExecutor(exec command.Executor) *Remote {
	return &Remote{builder: command.NewSafeBuilderWithExecutor(exec)}
}

// ResolveRev resolves a revision (tag or branch name) to the commit SHA it
// points at on the remote. Annotated tags resolve to the peeled commit. A
// full 40-hex SHA is returned as-is: ls-remote only lists ref tips, so a
// pinned commit can only be confirmed by fetching it.
func (r *Remote) ResolveRev(ctx context.Context, url, rev string) (string, error) {
	if err := command.ValidateRepoURL(url); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid repository URL")
	}
	if err := command.ValidateGitRef(rev); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid revision")
	}

	if fullSHARegex.MatchString(rev) {
		return rev, nil
	}

	cmd, err := r.builder.Build(ctx, "git", "ls-remote", "--quiet", url, rev, rev+"^{}")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build command")
	}

	output, err := cmd.Exec().Output()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeRevUnresolved, "git ls-remote failed").
			WithDetail("repo", url).
			WithDetail("rev", rev)
	}

	sha := pickLsRemoteSHA(string(output))
	if sha == "" {
		return "", errors.RevUnresolved(url, rev)
	}
	return sha, nil
}

// LatestTag returns the highest version-looking tag on the remote, for
// bumping rev pins.
func (r *Remote) LatestTag(ctx context.Context, url string) (string, error) {
	if err := command.ValidateRepoURL(url); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid repository URL")
	}

	cmd, err := r.builder.Build(ctx, "git", "ls-remote", "--tags", "--refs", "--quiet", url)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build command")
	}

	output, err := cmd.Exec().Output()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeRevUnresolved, "git ls-remote --tags failed").
			WithDetail("repo", url)
	}

	tags := parseTagRefs(string(output))
	if len(tags) == 0 {
		return "", errors.New(errors.ErrCodeRevUnresolved, "remote has no version tags").
			WithDetail("repo", url)
	}

	latest := tags[0]
	for _, tag := range tags[1:] {
		if versionLess(latest, tag) {
			latest = tag
		}
	}
	return latest, nil
}

// pickLsRemoteSHA picks the commit SHA from ls-remote output, preferring the
// peeled (^{}) line an annotated tag produces.
func pickLsRemoteSHA(output string) string {
	var sha string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if strings.HasSuffix(fields[1], "^{}") {
			return fields[0]
		}
		if sha == "" {
			sha = fields[0]
		}
	}
	return sha
}

// parseTagRefs extracts version-looking tag names from ls-remote --tags output.
func parseTagRefs(output string) []string {
	var tags []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimPrefix(fields[1], "refs/tags/")
		if versionTagRegex.MatchString(name) {
			tags = append(tags, name)
		}
	}
	return tags
}

var versionTagRegex = regexp.MustCompile(`^v?\d+(\.\d+)*([.-]?[a-zA-Z0-9]+)*$`)

// versionLess compares two version tags numerically segment by segment,
// with a lexical fallback for non-numeric segments.
func versionLess(a, b string) bool {
	as := splitVersion(a)
	bs := splitVersion(b)

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		switch {
		case aerr == nil && berr == nil:
			if an != bn {
				return an < bn
			}
		case aerr == nil:
			// numeric beats pre-release suffix: 1.0 > 1.0-rc1
			return false
		case berr == nil:
			return true
		default:
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
		}
	}

	// Equal prefix: an extra non-numeric segment marks a pre-release
	// (1.0-rc1 < 1.0), an extra numeric segment a later release (1.0 < 1.0.1).
	if len(as) < len(bs) {
		_, err := strconv.Atoi(bs[len(as)])
		return err == nil
	}
	if len(bs) < len(as) {
		_, err := strconv.Atoi(as[len(bs)])
		return err != nil
	}
	return false
}

func splitVersion(v string) []string {
	v = strings.TrimPrefix(v, "v")
	return strings.FieldsFunc(v, func(r rune) bool {
		return r == '.' || r == '-'
	})
}
