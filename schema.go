package textmcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// FieldDef defines a field for dynamic schema construction
type FieldDef struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean", "object", "array"
	Description string
	Required    bool
	Enum        []string // Optional enum values
}

// GenerateSchema is a thin wrapper around jsonschema.For[T]() for convenience
func GenerateSchema[T any]() (*jsonschema.Schema, error) {
	return jsonschema.For[T](nil)
}

// CreateDynamicSchema constructs an object schema from field definitions
func CreateDynamicSchema(fields []FieldDef) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema)
	var required []string

	for _, field := range fields {
		schema := &jsonschema.Schema{
			Type:        field.Type,
			Description: field.Description,
		}

		if len(field.Enum) > 0 {
			enum := make([]any, len(field.Enum))
			for i, v := range field.Enum {
				enum[i] = v
			}
			schema.Enum = enum
		}

		properties[field.Name] = schema

		if field.Required {
			required = append(required, field.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// textInputSchema describes the single required text argument of process_text
func textInputSchema() *jsonschema.Schema {
	return CreateDynamicSchema([]FieldDef{
		{Name: "text", Type: "string", Description: "Text to process", Required: true},
	})
}

// textRecordSchema describes the process_text result
func textRecordSchema() (*jsonschema.Schema, error) {
	return GenerateSchema[TextRecord]()
}
