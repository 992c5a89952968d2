// Package synthesis converts guided-question answers into a section's JSON
// value without invoking the completion oracle.
package synthesis

import (
	"strconv"
	"strings"

	"github.com/configforge/configforge/pkg/models"
)

// Synthesize builds a section value from raw answers. Each question's answer
// is coerced by its declared type; afterwards the section's generation
// logic, if any, reshapes the collected map into the section's final form.
//
// Without generation logic, object-typed sections return the raw
// per-question map and array-typed sections return an empty array.
func Synthesize(section *models.SectionSchema, answers map[string]any, questions []models.QuestionSpec) any {
	collected := make(map[string]any, len(questions))

	for _, question := range questions {
		raw, ok := answers[question.ID]
		if !ok || isEmpty(raw) {
			continue
		}

		collected[question.ID] = coerce(question.Type, raw)
	}

	switch section.Metadata.GenerationLogic {
	case "fields":
		return synthesizeFields(collected)
	case "documents":
		return synthesizeDocuments(collected)
	case "rules", "business-rules":
		return synthesizeRules(collected)
	}

	if section.Schema != nil && section.Schema.Type == "array" {
		return []any{}
	}

	return collected
}

func coerce(questionType string, raw any) any {
	switch questionType {
	case "textArray":
		return toStringList(raw)
	case "multiSelect":
		if list, ok := raw.([]any); ok {
			return list
		}

		return []any{raw}
	case "number":
		return intValue(raw)
	default:
		return raw
	}
}

// synthesizeFields turns fieldCount/fieldNames/fieldTypes answers into an
// array of field descriptors. Missing names fall back to field{i+1};
// types cycle over the provided list with a text fallback.
func synthesizeFields(collected map[string]any) any {
	count := intValue(collected["fieldCount"])
	if count <= 0 {
		count = 1
	}

	names := stringList(collected["fieldNames"])
	types := stringList(collected["fieldTypes"])

	fields := make([]any, 0, count)

	for i := 0; i < count; i++ {
		name := "field" + strconv.Itoa(i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}

		fieldType := "text"
		if len(types) > 0 && types[i%len(types)] != "" {
			fieldType = types[i%len(types)]
		}

		fields = append(fields, map[string]any{
			"name":     name,
			"label":    name,
			"type":     fieldType,
			"required": true,
		})
	}

	return fields
}

// synthesizeDocuments builds {required: [...]} where an entry is mandatory
// iff its name appears in the mandatoryDocuments answer.
func synthesizeDocuments(collected map[string]any) any {
	names := stringList(collected["documents"])
	mandatory := stringList(collected["mandatoryDocuments"])

	mandatorySet := make(map[string]bool, len(mandatory))
	for _, name := range mandatory {
		mandatorySet[name] = true
	}

	entries := make([]any, 0, len(names))

	for _, name := range names {
		entries = append(entries, map[string]any{
			"name":      name,
			"mandatory": mandatorySet[name],
		})
	}

	return map[string]any{"required": entries}
}

// synthesizeRules maps each field in fieldValidations to the first rule in
// validationRules (REQUIRED by default). A numeric value of 18 is attached
// only when the rule list contains MIN.
func synthesizeRules(collected map[string]any) any {
	fields := stringList(collected["fieldValidations"])
	rules := stringList(collected["validationRules"])

	rule := "REQUIRED"
	if len(rules) > 0 && rules[0] != "" {
		rule = rules[0]
	}

	hasMin := false

	for _, candidate := range rules {
		if candidate == "MIN" {
			hasMin = true

			break
		}
	}

	entries := make([]any, 0, len(fields))

	for _, field := range fields {
		entry := map[string]any{
			"field": field,
			"rule":  rule,
		}

		if hasMin {
			entry["value"] = 18
		}

		entries = append(entries, entry)
	}

	return map[string]any{"validation": entries}
}

func isEmpty(value any) bool {
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

// toStringList splits a comma-separated answer into trimmed non-empty
// entries. Answers that already are lists keep their elements.
func toStringList(raw any) []any {
	out := make([]any, 0)

	for _, entry := range stringListFrom(raw) {
		out = append(out, entry)
	}

	return out
}

func stringListFrom(raw any) []string {
	switch v := raw.(type) {
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))

		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}

		return out
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}

		return out
	case []string:
		return v
	default:
		return nil
	}
}

// stringList reads an already-coerced answer as a list of strings.
func stringList(value any) []string {
	return stringListFrom(value)
}

func intValue(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}
