package manifest

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the hook manifest format.
// It reflects the Manifest struct but excludes the 'Extensions' field, which
// exists only to tolerate runner-specific sections.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Runner-specific extension sections are allowed at the top level,
		// so unknown properties stay permitted.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for cleaner output.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Manifest{})
	schema.Title = "Hook Manifest"
	schema.Description = "Declarative list of pre-commit hook declarations consumed by an external runner."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
