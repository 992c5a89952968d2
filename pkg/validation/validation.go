// Package validation performs JSON Schema validation with fail-slow,
// multi-error reporting.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/configforge/configforge/pkg/models"
)

// Validate checks a value against a schema document and collects every
// violation in one pass. The returned error is non-nil only when the schema
// itself cannot be compiled; validation failures are reported through the
// result, never as an error.
func Validate(value any, schema map[string]any) (models.ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(value)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("compiling schema: %w", err)
	}

	if result.Valid() {
		return models.ValidationResult{Valid: true}, nil
	}

	violations := make([]models.ValidationError, 0, len(result.Errors()))

	for _, violation := range result.Errors() {
		violations = append(violations, models.ValidationError{
			Field:   fieldPath(violation),
			Message: violation.Description(),
			Code:    violation.Type(),
			Params:  violation.Details(),
		})
	}

	return models.ValidationResult{Valid: false, Errors: violations}, nil
}

// fieldPath normalizes the reported field so that a missing required
// property points at the property itself rather than its parent object.
func fieldPath(violation gojsonschema.ResultError) string {
	field := violation.Field()

	if violation.Type() != "required" {
		return field
	}

	property, ok := violation.Details()["property"].(string)
	if !ok || property == "" {
		return field
	}

	if field == "" || field == "(root)" {
		return property
	}

	if strings.HasSuffix(field, property) {
		return field
	}

	return field + "." + property
}
