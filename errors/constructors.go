package errors

import (
	"fmt"
	"os/exec"
)

// ManifestNotFound creates a manifest not found error
func ManifestNotFound(path string) *HookmanError {
	return New(ErrCodeManifestNotFound, fmt.Sprintf("hook manifest not found: %s", path)).
		WithDetail("path", path)
}

// ManifestInvalid creates an invalid manifest error
func ManifestInvalid(reason string) *HookmanError {
	return New(ErrCodeManifestInvalid, fmt.Sprintf("invalid manifest: %s", reason))
}

// HookUnknown creates an error for a hook id not exported by its source repo
func HookUnknown(repo, id string) *HookmanError {
	return New(ErrCodeHookUnknown, fmt.Sprintf("hook '%s' is not exported by %s", id, repo)).
		WithDetail("repo", repo).
		WithDetail("hook", id)
}

// HookDuplicate creates an error for a hook declared twice for the same repo
func HookDuplicate(repo, id string) *HookmanError {
	return New(ErrCodeHookDuplicate, fmt.Sprintf("hook '%s' declared more than once for %s", id, repo)).
		WithDetail("repo", repo).
		WithDetail("hook", id)
}

// RevUnresolved creates an error for a revision that does not resolve at the remote
func RevUnresolved(repo, rev string) *HookmanError {
	return New(ErrCodeRevUnresolved, fmt.Sprintf("revision '%s' does not resolve at %s", rev, repo)).
		WithDetail("repo", repo).
		WithDetail("rev", rev)
}

// RevMutable creates an error for a revision pin that is not immutable
func RevMutable(repo, rev string) *HookmanError {
	return New(ErrCodeRevMutable, fmt.Sprintf("revision '%s' for %s is a mutable reference; pin a tag or commit", rev, repo)).
		WithDetail("repo", repo).
		WithDetail("rev", rev)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *HookmanError {
	hookErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		hookErr = hookErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return hookErr
}

// GitNotInstalled creates an error for a missing git binary
func GitNotInstalled() *HookmanError {
	return New(ErrCodeGitNotInstalled, "git is not installed or not on PATH")
}
