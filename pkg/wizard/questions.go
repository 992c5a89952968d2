package wizard

import (
	"sort"
	"strings"

	"github.com/configforge/configforge/pkg/models"
)

// Questions returns a section's guided questions, deriving one question per
// schema property when the document declares none. Derivation sorts property
// names so the sequence is stable across runs.
func Questions(section *models.SectionSchema) []models.QuestionSpec {
	if len(section.Metadata.Questions) > 0 {
		return section.Metadata.Questions
	}

	schema := section.Schema
	if schema == nil {
		return nil
	}

	if schema.Type == "object" && len(schema.Properties) > 0 {
		names := make([]string, 0, len(schema.Properties))
		for name := range schema.Properties {
			names = append(names, name)
		}

		sort.Strings(names)

		questions := make([]models.QuestionSpec, 0, len(names))

		for _, name := range names {
			property := schema.Properties[name]

			question := models.QuestionSpec{
				ID:       name,
				Question: propertyQuestion(name, property),
				Type:     questionType(property.Type),
			}

			if len(property.Examples) > 0 {
				if example, ok := property.Examples[0].(string); ok {
					question.Example = example
				}
			}

			questions = append(questions, question)
		}

		return questions
	}

	if schema.IsPrimitive() {
		return []models.QuestionSpec{{
			ID:       "value",
			Question: "What should the " + section.Name + " value be?",
			Type:     questionType(schema.Type),
		}}
	}

	return nil
}

func propertyQuestion(name string, property *models.Property) string {
	if property.Description != "" {
		return property.Description
	}

	return "What should " + name + " be?"
}

func questionType(schemaType string) string {
	switch schemaType {
	case "number", "integer":
		return "number"
	case "array":
		return "textArray"
	default:
		return "text"
	}
}

// NextQuestion finds the first question without a non-empty answer. The
// second return value is false once every question is answered.
func NextQuestion(answers map[string]any, questions []models.QuestionSpec) (models.QuestionSpec, bool) {
	for _, question := range questions {
		if answerEmpty(answers[question.ID]) {
			return question, true
		}
	}

	return models.QuestionSpec{}, false
}

func answerEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
