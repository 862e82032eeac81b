package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/committools/hookman/errors"
)

// HooksFileName is the listing a source repository publishes to export hooks.
const HooksFileName = ".pre-commit-hooks.yaml"

// HookDefinition is one exported hook in a source repository's hooks file.
// Only the fields needed to verify declarations are modeled; the runner
// consumes the rest.
type HookDefinition struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Entry       string `yaml:"entry,omitempty" json:"entry,omitempty"`
	Language    string `yaml:"language,omitempty" json:"language,omitempty"`
	Files       string `yaml:"files,omitempty" json:"files,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// HooksFile is the set of hooks a source repository exports at a given
// revision.
type HooksFile struct {
	Definitions []HookDefinition
}

// IDs returns the exported hook ids in declaration order.
func (f *HooksFile) IDs() []string {
	ids := make([]string, 0, len(f.Definitions))
	for _, def := range f.Definitions {
		ids = append(ids, def.ID)
	}
	return ids
}

// Lookup returns the definition for a hook id, if exported.
func (f *HooksFile) Lookup(id string) (*HookDefinition, bool) {
	for i := range f.Definitions {
		if f.Definitions[i].ID == id {
			return &f.Definitions[i], true
		}
	}
	return nil, false
}

// LoadHooksFile reads the exported-hooks listing from a checked-out source
// repository directory.
func LoadHooksFile(repoDir string) (*HooksFile, error) {
	path := filepath.Join(repoDir, HooksFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeHookUnknown, "repository exports no hooks file").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to read hooks file").
			WithDetail("path", path)
	}

	return ParseHooksFile(data)
}

// ParseHooksFile parses a repository's exported-hooks listing.
func ParseHooksFile(data []byte) (*HooksFile, error) {
	var defs []HookDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse hooks file")
	}

	for i, def := range defs {
		if def.ID == "" {
			return nil, errors.New(errors.ErrCodeManifestInvalid, "hooks file entry has no id").
				WithDetail("index", i)
		}
	}

	return &HooksFile{Definitions: defs}, nil
}
