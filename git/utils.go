package git

import (
	"context"
	"strings"

	"github.com/committools/hookman/command"
	"github.com/committools/hookman/errors"
)

// IsGitRepo checks if the given directory is inside a git repository
func IsGitRepo(dir string) bool {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	return execCmd.Run() == nil
}

// GetGitRoot returns the root directory of the git repository containing dir.
// Hook shims install relative to this root.
func GetGitRoot(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build command")
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", errors.New(errors.ErrCodeNotARepo, "not inside a git repository").
			WithDetail("dir", dir)
	}
	return strings.TrimSpace(string(output)), nil
}
