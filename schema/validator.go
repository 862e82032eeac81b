package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed hookman.embedded.schema.json
var embeddedSchemaData []byte

const schemaResource = "hookman.json"

// Validator checks hook manifests against the embedded JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaResource, bytes.NewReader(embeddedSchemaData)); err != nil {
		return nil, fmt.Errorf("load embedded schema: %w", err)
	}

	compiled, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks any JSON-marshalable value against the schema. Typed
// manifests get round-tripped through JSON first so the schema sees plain
// maps and slices instead of Go structs.
func (v *Validator) Validate(doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode manifest for validation: %w", err)
	}

	var plain interface{}
	if err := json.Unmarshal(raw, &plain); err != nil {
		return fmt.Errorf("decode manifest for validation: %w", err)
	}

	err = v.schema.Validate(plain)
	if err == nil {
		return nil
	}

	if ve, ok := err.(*jsonschema.ValidationError); ok {
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(leafMessages(ve), "\n"))
	}
	return fmt.Errorf("schema validation failed: %w", err)
}

// leafMessages flattens a validation error tree into per-location lines.
func leafMessages(ve *jsonschema.ValidationError) []string {
	var out []string
	if ve.InstanceLocation != "" {
		out = append(out, fmt.Sprintf("- %s: %s", ve.InstanceLocation, ve.Message))
	}
	for _, cause := range ve.Causes {
		out = append(out, leafMessages(cause)...)
	}
	return out
}
