package models

// SectionSchema is a named, independently validated fragment of the overall
// service configuration, loaded from a per-section schema document.
type SectionSchema struct {
	// Name is the section identifier, derived from the document filename.
	Name string

	// Required marks sections that must always be part of a configuration.
	// It comes from a top-level boolean `required` flag in the document,
	// never from the JSON Schema `required` keyword (which is an array).
	Required bool

	// Schema is the typed view of the document's schema keywords.
	Schema *JSONSchema

	// Metadata carries the wizard-facing information stored alongside the
	// schema keywords in the same document.
	Metadata SectionMetadata

	// Raw is the document as parsed, including metadata keys.
	Raw map[string]any
}

// SectionMetadata is the wizard-facing information for a section.
type SectionMetadata struct {
	Title             string         `json:"title,omitempty"`
	Description       string         `json:"description,omitempty"`
	PreConfigured     bool           `json:"preConfigured,omitempty"`
	PreConfigTemplate any            `json:"preConfigTemplate,omitempty"`
	GenerationLogic   string         `json:"generationLogic,omitempty"`
	Questions         []QuestionSpec `json:"questions,omitempty"`
	Examples          []any          `json:"examples,omitempty"`
}

// QuestionSpec is a single guided question used to collect a section's
// content without invoking the completion oracle.
type QuestionSpec struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Example  string `json:"example,omitempty"`
	// Type controls answer coercion: text (default), textArray,
	// multiSelect or number.
	Type string `json:"type,omitempty"`
}

// SectionOrder is the canonical section sequence: required sections first,
// then optional ones, each partition in discovery order.
type SectionOrder struct {
	Sections []string `json:"order"`
	Required []string `json:"required"`
}

// metadataKeys are the document keys that are not JSON Schema keywords and
// must be stripped before the document is handed to the validator.
var metadataKeys = []string{
	"preConfigured",
	"preConfigTemplate",
	"generationLogic",
	"questions",
}

// ValidationDocument returns the schema document with metadata keys removed,
// suitable for compilation by a JSON Schema validator. The top-level boolean
// `required` section flag is stripped as well; an array-valued `required`
// (the actual schema keyword) is preserved.
func (s *SectionSchema) ValidationDocument() map[string]any {
	doc := make(map[string]any, len(s.Raw))

	for key, value := range s.Raw {
		doc[key] = value
	}

	for _, key := range metadataKeys {
		delete(doc, key)
	}

	if _, isBool := doc["required"].(bool); isBool {
		delete(doc, "required")
	}

	return doc
}
