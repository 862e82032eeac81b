package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/committools/hookman/errors"
	"github.com/committools/hookman/schema"
)

// SchemaValidator validates a manifest against the embedded JSON Schema.
// It wraps schema.Validator so callers working with manifests never touch
// the schema package directly.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator creates a new schema validator, loading the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// Validate validates a manifest against the schema.
func (v *SchemaValidator) Validate(m *Manifest) error {
	return v.validator.Validate(m)
}

// ValidateBytes validates a raw YAML document against the schema without
// going through the typed decoder, so structural problems report in schema
// terms rather than as decode errors.
func (v *SchemaValidator) ValidateBytes(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeManifestInvalid, "manifest is not valid YAML")
	}
	return v.validator.Validate(doc)
}
