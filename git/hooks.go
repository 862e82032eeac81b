package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const preCommitShimTemplate = `#!/bin/sh
# hookman git hook - pre-commit
# Auto-generated, do not edit directly

RUNNER="{{.Runner}}"

if ! command -v "$RUNNER" >/dev/null 2>&1; then
    echo "hookman: runner '$RUNNER' not found, skipping pre-commit checks"
    exit 0
fi

exec "$RUNNER" run
`

// HookManager installs the pre-commit shim that delegates to the external
// runner. The shim is deliberately thin: hook execution, exit codes, and
// failure reporting belong to the runner, not to this tool.
type HookManager struct {
	runner string
}

// NewHookManager creates a hook manager delegating to the given runner binary.
func NewHookManager(runner string) *HookManager {
	if runner == "" {
		runner = "pre-commit"
	}
	return &HookManager{runner: runner}
}

// InstallHooks writes the pre-commit shim into the repository's hooks
// directory. An existing foreign hook is backed up, never overwritten.
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	return m.installHook(hooksDir, "pre-commit", preCommitShimTemplate)
}

// UninstallHooks removes the shim, restoring any backed-up foreign hook.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")

	if !m.isManagedHook(hookPath) {
		return nil
	}

	if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pre-commit hook: %w", err)
	}

	backupPath := hookPath + ".pre-hookman"
	if _, err := os.Stat(backupPath); err == nil {
		if err := os.Rename(backupPath, hookPath); err != nil {
			return fmt.Errorf("restore backed-up hook: %w", err)
		}
	}

	return nil
}

// installHook installs a single git hook
func (m *HookManager) installHook(hooksDir, hookName, templateContent string) error {
	hookPath := filepath.Join(hooksDir, hookName)

	// Back up an existing foreign hook before replacing it
	if _, err := os.Stat(hookPath); err == nil {
		if !m.isManagedHook(hookPath) {
			backupPath := hookPath + ".pre-hookman"
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	}

	tmpl, err := template.New(hookName).Parse(templateContent)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		HookName string
		Runner   string
	}{
		HookName: hookName,
		Runner:   m.runner,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// Write hook file with executable permissions
	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isManagedHook checks if a hook file was written by this tool
func (m *HookManager) isManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte("hookman git hook"))
}
