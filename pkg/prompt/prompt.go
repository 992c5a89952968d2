// Package prompt builds the instruction text sent to the completion oracle
// for per-section config generation.
package prompt

import (
	"encoding/json"
	"strings"

	"github.com/configforge/configforge/pkg/models"
)

// Build constructs the generation prompt for a section: the pretty-printed
// schema, the user-supplied details, and an instruction block pinning down
// the output format. Primitive-typed schemas get an explicit bare-value
// instruction because oracles default to wrapping everything in an object.
func Build(sectionName string, section *models.SectionSchema, details map[string]any) string {
	var b strings.Builder

	b.WriteString("You are generating the \"" + sectionName + "\" section of a service configuration.\n\n")

	if description := section.Metadata.Description; description != "" {
		b.WriteString("Section purpose: " + description + "\n\n")
	}

	b.WriteString("The value must conform to this JSON Schema:\n")
	b.WriteString(prettyJSON(section.ValidationDocument()))
	b.WriteString("\n\n")

	if len(details) > 0 {
		b.WriteString("User-provided details to incorporate:\n")
		b.WriteString(prettyJSON(details))
		b.WriteString("\n\n")
	}

	b.WriteString("Rules:\n")
	b.WriteString("- Respond with ONLY the JSON value. No prose, no markdown, no code fences.\n")
	b.WriteString("- Every field listed under \"required\" in the schema must be present and non-empty.\n")

	if section.Schema != nil && section.Schema.IsPrimitive() {
		b.WriteString("- The schema type is " + section.Schema.Type +
			": respond with a bare " + section.Schema.Type +
			" value, NOT an object wrapping it.\n")
	}

	return b.String()
}

func prettyJSON(value any) string {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "{}"
	}

	return string(data)
}
