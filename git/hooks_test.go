package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookManager_InstallHooks(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	manager := NewHookManager("pre-commit")

	err := manager.InstallHooks(context.Background(), tmpDir)
	require.NoError(t, err)

	hookPath := filepath.Join(hooksDir, "pre-commit")
	assert.FileExists(t, hookPath)

	info, err := os.Stat(hookPath)
	require.NoError(t, err)
	assert.True(t, info.Mode()&0100 != 0, "hook should be executable")

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hookman git hook")
	assert.Contains(t, string(content), `RUNNER="pre-commit"`)
}

func TestHookManager_BacksUpForeignHook(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	hookPath := filepath.Join(hooksDir, "pre-commit")
	foreign := "#!/bin/sh\nexit 0\n"
	require.NoError(t, os.WriteFile(hookPath, []byte(foreign), 0755))

	manager := NewHookManager("")
	require.NoError(t, manager.InstallHooks(context.Background(), tmpDir))

	// Foreign hook moved aside
	backup, err := os.ReadFile(hookPath + ".pre-hookman")
	require.NoError(t, err)
	assert.Equal(t, foreign, string(backup))

	// Uninstall restores it
	require.NoError(t, manager.UninstallHooks(context.Background(), tmpDir))
	restored, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(restored))
}

func TestHookManager_UninstallLeavesForeignHook(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	hookPath := filepath.Join(hooksDir, "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\nexit 0\n"), 0755))

	manager := NewHookManager("")
	require.NoError(t, manager.UninstallHooks(context.Background(), tmpDir))

	assert.FileExists(t, hookPath, "foreign hook must not be removed")
}

func TestHookManager_DefaultRunner(t *testing.T) {
	manager := NewHookManager("")
	assert.Equal(t, "pre-commit", manager.runner)
}
