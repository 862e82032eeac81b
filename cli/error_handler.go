package cli

import (
	"fmt"
	"os"

	"github.com/committools/hookman/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeManifestNotFound:
		fmt.Fprintf(os.Stderr, "❌ No hook manifest found. Run 'hookman sample' to create a starter manifest.\n")
		return err

	case errors.ErrCodeRevMutable:
		if hookErr, ok := err.(*errors.HookmanError); ok {
			fmt.Fprintf(os.Stderr, "❌ Rev '%s' for %s is a mutable reference\n",
				hookErr.Details["rev"], hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Run 'hookman pin' to resolve pins to immutable revisions.\n")
		}
		return err

	case errors.ErrCodeRevUnresolved:
		if hookErr, ok := err.(*errors.HookmanError); ok {
			fmt.Fprintf(os.Stderr, "❌ Rev '%s' does not resolve at %s\n",
				hookErr.Details["rev"], hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Check the rev against the repository's tags.\n")
		}
		return err

	case errors.ErrCodeHookUnknown:
		if hookErr, ok := err.(*errors.HookmanError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%s' is not exported by %s\n",
				hookErr.Details["hook"], hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Run 'hookman verify' to list the hooks each repo exports.\n")
		}
		return err

	case errors.ErrCodeGitNotInstalled, errors.ErrCodeCommandNotFound:
		fmt.Fprintf(os.Stderr, "❌ Required command not found. Make sure git is installed and on PATH.\n")
		return err

	case errors.ErrCodeNotARepo:
		fmt.Fprintf(os.Stderr, "❌ Not inside a git repository.\n")
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if hookErr, ok := err.(*errors.HookmanError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hookErr.ToJSON())
			}
		}
		return err
	}
}
