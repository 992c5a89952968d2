package schemas

import (
	"encoding/json"

	"github.com/configforge/configforge/pkg/models"
)

// parseSection decodes a section document into its typed schema view plus
// the wizard metadata stored alongside the schema keywords.
func parseSection(name string, data []byte) (*models.SectionSchema, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Section: name, Err: err}
	}

	required, _ := raw["required"].(bool)

	section := &models.SectionSchema{
		Name:     name,
		Required: required,
		Schema:   decodeRoot(raw),
		Metadata: decodeMetadata(raw),
		Raw:      raw,
	}

	return section, nil
}

func decodeRoot(raw map[string]any) *models.JSONSchema {
	schema := &models.JSONSchema{
		Type:        stringValue(raw, "type"),
		Title:       stringValue(raw, "title"),
		Description: stringValue(raw, "description"),
		Properties:  decodeProperties(raw["properties"]),
		Enum:        anySlice(raw["enum"]),
		Examples:    anySlice(raw["examples"]),
	}

	if items, ok := raw["items"].(map[string]any); ok {
		schema.Items = decodeProperty(items)
	}

	// Only an array-valued `required` is the schema keyword; a boolean is
	// the section-level flag and belongs to SectionSchema.Required.
	schema.Required = stringSlice(raw["required"])

	return schema
}

func decodeMetadata(raw map[string]any) models.SectionMetadata {
	preConfigured, _ := raw["preConfigured"].(bool)

	meta := models.SectionMetadata{
		Title:             stringValue(raw, "title"),
		Description:       stringValue(raw, "description"),
		PreConfigured:     preConfigured,
		PreConfigTemplate: raw["preConfigTemplate"],
		GenerationLogic:   decodeGenerationLogic(raw["generationLogic"]),
		Questions:         decodeQuestions(raw["questions"]),
		Examples:          anySlice(raw["examples"]),
	}

	return meta
}

// decodeGenerationLogic accepts either a bare string or an object with a
// `type` key, so hand-authored documents can use whichever reads better.
func decodeGenerationLogic(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		return stringValue(v, "type")
	default:
		return ""
	}
}

func decodeQuestions(value any) []models.QuestionSpec {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	questions := make([]models.QuestionSpec, 0, len(items))

	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		question := models.QuestionSpec{
			ID:       stringValue(entry, "id"),
			Question: stringValue(entry, "question"),
			Example:  stringValue(entry, "example"),
			Type:     stringValue(entry, "type"),
		}

		if question.ID == "" {
			continue
		}

		questions = append(questions, question)
	}

	return questions
}

func decodeProperties(value any) map[string]*models.Property {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	properties := make(map[string]*models.Property, len(raw))

	for name, node := range raw {
		entry, ok := node.(map[string]any)
		if !ok {
			continue
		}

		properties[name] = decodeProperty(entry)
	}

	return properties
}

func decodeProperty(raw map[string]any) *models.Property {
	property := &models.Property{
		Type:        stringValue(raw, "type"),
		Description: stringValue(raw, "description"),
		Enum:        anySlice(raw["enum"]),
		Default:     raw["default"],
		Format:      stringValue(raw, "format"),
		MinLength:   intPointer(raw["minLength"]),
		MaxLength:   intPointer(raw["maxLength"]),
		Pattern:     stringValue(raw, "pattern"),
		Properties:  decodeProperties(raw["properties"]),
		Required:    stringSlice(raw["required"]),
		Examples:    anySlice(raw["examples"]),
	}

	if items, ok := raw["items"].(map[string]any); ok {
		property.Items = decodeProperty(items)
	}

	return property
}

func stringValue(raw map[string]any, key string) string {
	s, _ := raw[key].(string)

	return s
}

func anySlice(value any) []any {
	items, _ := value.([]any)

	return items
}

func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func intPointer(value any) *int {
	number, ok := value.(float64)
	if !ok {
		return nil
	}

	n := int(number)

	return &n
}
