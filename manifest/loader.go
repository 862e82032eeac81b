package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/committools/hookman/errors"
)

// ManifestNames lists the file names recognized as hook manifests, in
// lookup order.
var ManifestNames = []string{
	".pre-commit-config.yaml",
	".pre-commit-config.yml",
}

// Load reads and parses a hook manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to read manifest file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses a hook manifest from raw YAML
func LoadFromBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse manifest").
			WithDetail("error", err.Error())
	}
	return &m, nil
}

// LoadDefault finds and loads the manifest for the current working directory.
func LoadDefault() (*Manifest, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
	}

	path, err := FindManifest(cwd)
	if err != nil {
		return nil, "", err
	}

	m, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

// FindManifest searches for a hook manifest starting from startDir and
// walking up to the filesystem root. The manifest conventionally lives at
// the repository root, but running from a subdirectory should still work.
func FindManifest(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range ManifestNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ManifestNotFound(filepath.Join(startDir, ManifestNames[0]))
}

// Save writes the manifest back to disk, preserving declaration order.
func Save(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal manifest")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to write manifest file").
			WithDetail("path", path)
	}
	return nil
}
