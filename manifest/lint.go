package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/committools/hookman/errors"
)

// Severity classifies a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single lint result with its location in the source document.
type Finding struct {
	Severity Severity `json:"severity"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Severity, f.Message)
}

// HasErrors reports whether any finding is error-severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// knownHookKeys are the hook block keys understood by runners. Anything else
// is flagged as a probable typo.
var knownHookKeys = map[string]bool{
	"id":                      true,
	"name":                    true,
	"alias":                   true,
	"args":                    true,
	"entry":                   true,
	"language_version":        true,
	"files":                   true,
	"exclude":                 true,
	"types":                   true,
	"exclude_types":           true,
	"stages":                  true,
	"additional_dependencies": true,
	"always_run":              true,
	"pass_filenames":          true,
	"verbose":                 true,
	"log_file":                true,
}

// Lint inspects the raw document tree and reports shape problems the typed
// decoder either rejects opaquely or silently tolerates: duplicate mapping
// keys, non-scalar args entries, empty ids and revs, and mutable rev pins.
// Findings carry source line numbers for operator output.
func Lint(data []byte) ([]Finding, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "manifest is not valid YAML")
	}

	if len(root.Content) == 0 {
		return []Finding{{Severity: SeverityWarning, Line: 1, Message: "manifest is empty"}}, nil
	}

	doc := root.Content[0]
	var findings []Finding

	switch doc.Kind {
	case yaml.SequenceNode:
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Line:     doc.Line,
			Message:  "legacy top-level repo list; migrate to a mapping with a 'repos' key",
		})
		findings = append(findings, lintRepoList(doc)...)
		return findings, nil
	case yaml.MappingNode:
		// handled below
	default:
		return append(findings, Finding{
			Severity: SeverityError,
			Line:     doc.Line,
			Message:  "manifest must be a YAML mapping",
		}), nil
	}

	findings = append(findings, lintDuplicateKeys(doc)...)

	reposNode := mappingValue(doc, "repos")
	if reposNode == nil {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Line:     doc.Line,
			Message:  "missing required top-level key 'repos'",
		})
		return findings, nil
	}
	if reposNode.Kind != yaml.SequenceNode {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Line:     reposNode.Line,
			Message:  "'repos' must be a sequence of repository blocks",
		})
		return findings, nil
	}

	findings = append(findings, lintRepoList(reposNode)...)
	return findings, nil
}

func lintRepoList(repos *yaml.Node) []Finding {
	var findings []Finding

	for _, repoNode := range repos.Content {
		if repoNode.Kind != yaml.MappingNode {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     repoNode.Line,
				Message:  "repository block must be a mapping",
			})
			continue
		}

		findings = append(findings, lintDuplicateKeys(repoNode)...)

		repoURL := scalarValue(repoNode, "repo")
		remote := repoURL != RepoLocal && repoURL != RepoMeta

		if repoURL == "" {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     repoNode.Line,
				Message:  "repository block has no 'repo' URL",
			})
		}

		rev := scalarValue(repoNode, "rev")
		if remote {
			switch {
			case rev == "":
				findings = append(findings, Finding{
					Severity: SeverityError,
					Line:     repoNode.Line,
					Message:  fmt.Sprintf("repo %s has no rev; pin a tag or commit", repoURL),
				})
			case IsMutableRev(rev):
				findings = append(findings, Finding{
					Severity: SeverityError,
					Line:     repoNode.Line,
					Message:  fmt.Sprintf("rev '%s' is a mutable reference; pin a tag or commit", rev),
				})
			}
		}

		hooksNode := mappingValue(repoNode, "hooks")
		if hooksNode == nil || hooksNode.Kind != yaml.SequenceNode || len(hooksNode.Content) == 0 {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     repoNode.Line,
				Message:  fmt.Sprintf("repo %s declares no hooks", repoURL),
			})
			continue
		}

		for _, hookNode := range hooksNode.Content {
			findings = append(findings, lintHook(hookNode)...)
		}
	}

	return findings
}

func lintHook(hook *yaml.Node) []Finding {
	if hook.Kind != yaml.MappingNode {
		return []Finding{{
			Severity: SeverityError,
			Line:     hook.Line,
			Message:  "hook block must be a mapping",
		}}
	}

	var findings []Finding
	findings = append(findings, lintDuplicateKeys(hook)...)

	if scalarValue(hook, "id") == "" {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Line:     hook.Line,
			Message:  "hook block has no 'id'",
		})
	}

	if lv := scalarValue(hook, "language_version"); lv == "latest" {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Line:     hook.Line,
			Message:  "language_version 'latest' is not reproducible",
		})
	}

	for i := 0; i < len(hook.Content); i += 2 {
		key, value := hook.Content[i], hook.Content[i+1]

		if !knownHookKeys[key.Value] {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Line:     key.Line,
				Message:  fmt.Sprintf("unknown hook key '%s'", key.Value),
			})
		}

		if key.Value == "args" {
			if value.Kind != yaml.SequenceNode {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Line:     value.Line,
					Message:  "'args' must be a sequence of strings",
				})
				continue
			}
			for _, arg := range value.Content {
				if arg.Kind != yaml.ScalarNode {
					findings = append(findings, Finding{
						Severity: SeverityError,
						Line:     arg.Line,
						Message:  "'args' entries must be scalar strings, not nested structures",
					})
				}
			}
		}
	}

	return findings
}

// lintDuplicateKeys flags keys declared twice within a single mapping. The
// typed decoder rejects these with a parse error; reporting them here gives
// the operator a location instead.
func lintDuplicateKeys(mapping *yaml.Node) []Finding {
	var findings []Finding
	seen := make(map[string]bool)

	for i := 0; i < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if seen[key.Value] {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     key.Line,
				Message:  fmt.Sprintf("duplicate key '%s'", key.Value),
			})
		}
		seen[key.Value] = true
	}

	return findings
}

// mappingValue returns the value node for a key in a mapping, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// scalarValue returns the scalar string value for a key in a mapping, or "".
func scalarValue(mapping *yaml.Node, key string) string {
	node := mappingValue(mapping, key)
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}
