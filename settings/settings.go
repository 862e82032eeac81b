package settings

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/committools/hookman/errors"
)

// Settings holds tool-level configuration, as opposed to the hook manifest
// itself which belongs to the repository being checked. Values merge in
// order: defaults, then ~/.config/hookman/hookman.toml, then HOOKMAN_* env.
type Settings struct {
	// CacheDir is where source repository checkouts are kept.
	CacheDir string `toml:"cache_dir" env:"HOOKMAN_CACHE_DIR"`

	// Runner is the external runner binary the git hook shim delegates to.
	Runner string `toml:"runner" env:"HOOKMAN_RUNNER"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level" env:"HOOKMAN_LOG_LEVEL"`

	// RemoteTimeout bounds every git network operation, e.g. "90s".
	RemoteTimeout string `toml:"remote_timeout" env:"HOOKMAN_REMOTE_TIMEOUT"`
}

// Defaults returns the baseline settings before any file or env overlay.
func Defaults() *Settings {
	return &Settings{
		Runner:        "pre-commit",
		LogLevel:      "info",
		RemoteTimeout: "2m",
	}
}

// Path returns the settings file location under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to locate user config directory")
	}
	return filepath.Join(base, "hookman", "hookman.toml"), nil
}

// Load reads settings from the TOML file (if present) and overlays
// HOOKMAN_* environment variables.
func Load() (*Settings, error) {
	s := Defaults()

	path, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if err := toml.Unmarshal(data, s); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse settings file").
					WithDetail("path", path)
			}
		case !os.IsNotExist(readErr):
			return nil, errors.Wrap(readErr, errors.ErrCodeManifestInvalid, "failed to read settings file").
				WithDetail("path", path)
		}
	}

	if err := env.Parse(s); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to parse HOOKMAN_* environment")
	}

	return s, nil
}

// RemoteTimeoutDuration parses the remote timeout, falling back to the
// default when the configured value does not parse.
func (s *Settings) RemoteTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.RemoteTimeout)
	if err != nil || d <= 0 {
		return 2 * time.Minute
	}
	return d
}
