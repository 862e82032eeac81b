package errors

import (
	"fmt"
	"testing"
)

func TestHookmanError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeHookUnknown, "hook not exported")
	if err.Code != ErrCodeHookUnknown {
		t.Errorf("expected code %s, got %s", ErrCodeHookUnknown, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeHookUnknown) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("repo", "https://github.com/psf/black").WithDetail("line", 12)
	if detailed.Details["repo"] != "https://github.com/psf/black" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test HookUnknown
	err := HookUnknown("https://github.com/psf/black", "black-jupyter")
	if err.Code != ErrCodeHookUnknown {
		t.Errorf("expected code %s, got %s", ErrCodeHookUnknown, err.Code)
	}
	if err.Details["hook"] != "black-jupyter" {
		t.Error("HookUnknown should include hook detail")
	}

	// Test RevMutable
	err = RevMutable("https://github.com/psf/black", "master")
	if err.Code != ErrCodeRevMutable {
		t.Errorf("expected code %s, got %s", ErrCodeRevMutable, err.Code)
	}
	if err.Details["rev"] != "master" {
		t.Error("RevMutable should include rev detail")
	}

	// Test GetCode through wrapping
	wrapped := fmt.Errorf("outer: %w", ManifestNotFound(".pre-commit-config.yaml"))
	if GetCode(wrapped) != ErrCodeManifestNotFound {
		t.Errorf("expected code %s through unwrap, got %s", ErrCodeManifestNotFound, GetCode(wrapped))
	}
}
