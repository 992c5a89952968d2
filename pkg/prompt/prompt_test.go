package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/configforge/configforge/pkg/models"
)

func sectionWithType(schemaType string) *models.SectionSchema {
	return &models.SectionSchema{
		Name:   "test",
		Schema: &models.JSONSchema{Type: schemaType},
		Raw:    map[string]any{"type": schemaType},
	}
}

func TestBuild_PrimitiveSchemasInstructBareValues(t *testing.T) {
	for _, schemaType := range []string{"string", "number", "integer", "boolean"} {
		prompt := Build("serviceName", sectionWithType(schemaType), nil)
		assert.Contains(t, prompt, "bare "+schemaType+" value", "type %s", schemaType)
		assert.Contains(t, prompt, "NOT an object")
	}
}

func TestBuild_StructuredSchemasDoNotInstructBareValues(t *testing.T) {
	for _, schemaType := range []string{"object", "array"} {
		prompt := Build("workflow", sectionWithType(schemaType), nil)
		assert.NotContains(t, prompt, "bare", "type %s", schemaType)
	}
}

func TestBuild_EmbedsSchemaAndDetails(t *testing.T) {
	section := &models.SectionSchema{
		Name: "module",
		Schema: &models.JSONSchema{
			Type: "object",
		},
		Metadata: models.SectionMetadata{
			Description: "Top-level module identity",
		},
		Raw: map[string]any{
			"type":     "object",
			"required": []any{"name"},
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
		},
	}

	details := map[string]any{"name": "loan-origination"}

	prompt := Build("module", section, details)

	assert.Contains(t, prompt, `"module" section`)
	assert.Contains(t, prompt, "Top-level module identity")
	assert.Contains(t, prompt, `"required"`)
	assert.Contains(t, prompt, "loan-origination")
	assert.Contains(t, prompt, "ONLY the JSON value")
	assert.Contains(t, prompt, "present and non-empty")
}

func TestBuild_StripsSectionFlagFromEmbeddedSchema(t *testing.T) {
	section := &models.SectionSchema{
		Name:   "module",
		Schema: &models.JSONSchema{Type: "object"},
		Raw: map[string]any{
			"type":      "object",
			"required":  true,
			"questions": []any{map[string]any{"id": "q1"}},
		},
	}

	prompt := Build("module", section, nil)

	// Wizard metadata is not part of the schema shown to the oracle
	assert.NotContains(t, prompt, "questions")
	assert.NotContains(t, prompt, `"required": true`)
}
