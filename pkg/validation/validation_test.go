package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": float64(2)},
			"service": map[string]any{"type": "string"},
		},
		"required": []any{"name", "service"},
	}

	result, err := Validate(map[string]any{"name": "loans", "service": "billing"}, schema)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_ReportsEveryMissingRequiredField(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"module":  map[string]any{"type": "string"},
			"service": map[string]any{"type": "string"},
		},
		"required": []any{"module", "service"},
	}

	result, err := Validate(map[string]any{}, schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	fields := []string{result.Errors[0].Field, result.Errors[1].Field}
	assert.ElementsMatch(t, []string{"module", "service"}, fields)

	for _, violation := range result.Errors {
		assert.Equal(t, "required", violation.Code)
		assert.NotEmpty(t, violation.Message)
	}
}

func TestValidate_CollectsMultipleViolationKinds(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "pattern": "^[a-z-]+$"},
			"email": map[string]any{"type": "string", "format": "email"},
			"count": map[string]any{"type": "number"},
		},
		"required": []any{"name"},
	}

	value := map[string]any{
		"name":  "Not Valid!",
		"email": "nope",
		"count": "three",
	}

	result, err := Validate(value, schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	codes := make(map[string]bool)
	for _, violation := range result.Errors {
		codes[violation.Code] = true
	}

	assert.True(t, codes["pattern"])
	assert.True(t, codes["format"])
	assert.True(t, codes["invalid_type"])
}

func TestValidate_NestedRequiredFieldPath(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"owner": map[string]any{
				"type":       "object",
				"properties": map[string]any{"email": map[string]any{"type": "string"}},
				"required":   []any{"email"},
			},
		},
	}

	result, err := Validate(map[string]any{"owner": map[string]any{}}, schema)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "owner.email", result.Errors[0].Field)
}

func TestValidate_BarePrimitive(t *testing.T) {
	schema := map[string]any{"type": "string", "minLength": float64(3)}

	result, err := Validate("loan-service", schema)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = Validate("ab", schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = Validate(map[string]any{"value": "loan-service"}, schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_ArrayItems(t *testing.T) {
	schema := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
			"required":   []any{"name"},
		},
	}

	value := []any{
		map[string]any{"name": "amount"},
		map[string]any{},
	}

	result, err := Validate(value, schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Field, "1")
}
