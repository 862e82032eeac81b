package manifest

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Reserved repo names understood by runners without a remote fetch.
const (
	RepoLocal = "local"
	RepoMeta  = "meta"
)

// Hook is a single hook declaration: a hook id exported by the source
// repository at the pinned revision, plus per-hook overrides passed through
// to the underlying tool.
type Hook struct {
	ID              string   `yaml:"id" json:"id" jsonschema:"required,description=Identifier of a hook exported by the source repository"`
	Name            string   `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Display name override for runner output"`
	Args            []string `yaml:"args,omitempty" json:"args,omitempty" jsonschema:"description=Ordered arguments passed to the underlying tool"`
	LanguageVersion string   `yaml:"language_version,omitempty" json:"language_version,omitempty" jsonschema:"description=Language runtime version to run the hook with"`

	Files                  string   `yaml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Pattern of file paths the hook runs on"`
	Exclude                string   `yaml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Pattern of file paths excluded from the hook"`
	Stages                 []string `yaml:"stages,omitempty" json:"stages,omitempty" jsonschema:"description=Git stages the hook runs at (e.g. pre-commit, pre-push)"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty" jsonschema:"description=Extra packages installed into the hook environment"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" json:"always_run,omitempty" jsonschema:"description=Run even when no matching files changed"`
	Verbose                bool     `yaml:"verbose,omitempty" json:"verbose,omitempty" jsonschema:"description=Always print hook output"`
}

// DisplayName returns the name shown in operator output, falling back to the
// hook id when no override is declared.
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// Repo is one source repository block: where hooks come from and the
// immutable revision they are pinned to.
type Repo struct {
	Repo  string `yaml:"repo" json:"repo" jsonschema:"required,description=Source repository URL, or the reserved words 'local'/'meta'"`
	Rev   string `yaml:"rev,omitempty" json:"rev,omitempty" jsonschema:"description=Pinned revision or tag; must resolve to an immutable commit"`
	Hooks []Hook `yaml:"hooks" json:"hooks" jsonschema:"required,description=Ordered hook declarations from this repository"`
}

// IsRemote reports whether the repo block references a fetchable remote.
// Local and meta repos are resolved by the runner itself and carry no rev.
func (r *Repo) IsRemote() bool {
	return r.Repo != RepoLocal && r.Repo != RepoMeta
}

// Manifest represents the hook manifest (.pre-commit-config.yaml).
// Declarations execute top to bottom; the file guarantees no other ordering
// dependency between them.
type Manifest struct {
	Repos []Repo `yaml:"repos" json:"repos" jsonschema:"required,description=Ordered sequence of source repository blocks"`

	DefaultStages          []string          `yaml:"default_stages,omitempty" json:"default_stages,omitempty" jsonschema:"description=Stages applied to hooks that declare none"`
	DefaultLanguageVersion map[string]string `yaml:"default_language_version,omitempty" json:"default_language_version,omitempty" jsonschema:"description=Map of language name to default runtime version"`
	Exclude                string            `yaml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Global exclude pattern applied before per-hook patterns"`
	FailFast               bool              `yaml:"fail_fast,omitempty" json:"fail_fast,omitempty" jsonschema:"description=Stop at the first failing hook"`
	MinimumVersion         string            `yaml:"minimum_version,omitempty" json:"minimum_version,omitempty" jsonschema:"description=Minimum runner version this manifest requires"`

	// Extensions captures all other top-level keys for forward compatibility
	// with runner-specific sections (e.g. a hosted-CI block).
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// UnmarshalYAML implements custom YAML unmarshaling to handle the legacy
// format where the whole document was a bare top-level sequence of repo
// blocks instead of a mapping with a 'repos' key.
func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var repos []Repo
		if err := node.Decode(&repos); err != nil {
			return fmt.Errorf("failed to decode legacy top-level repo list: %w", err)
		}
		m.Repos = repos
		return nil
	}

	// Alias sidesteps infinite recursion into this method.
	type rawManifest Manifest
	var raw rawManifest
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*m = Manifest(raw)
	return nil
}

// HookCount returns the total number of hook declarations.
func (m *Manifest) HookCount() int {
	n := 0
	for _, repo := range m.Repos {
		n += len(repo.Hooks)
	}
	return n
}

// RepoCount returns the number of distinct source repositories.
func (m *Manifest) RepoCount() int {
	seen := make(map[string]bool, len(m.Repos))
	for _, repo := range m.Repos {
		seen[repo.Repo] = true
	}
	return len(seen)
}

// UnmarshalExtension decodes a runner-specific top-level section into the
// provided target struct. The target must be a pointer.
//
// Example:
//
//	var ci CIConfig
//	err := m.UnmarshalExtension("ci", &ci)
func (m *Manifest) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := m.Extensions[key]
	if !ok {
		// Absent keys are not an error; the target stays zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension section '%s': %w", key, err)
	}

	return nil
}
