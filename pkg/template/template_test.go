package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute_StringLeaf(t *testing.T) {
	vars := map[string]any{
		"serviceName": "loan-service",
	}

	result := Substitute("${serviceName}", vars)
	assert.Equal(t, "loan-service", result)

	// Embedded placeholder keeps the surrounding text
	result = Substitute("queue-${serviceName}-events", vars)
	assert.Equal(t, "queue-loan-service-events", result)
}

func TestSubstitute_PreservesVariableType(t *testing.T) {
	vars := map[string]any{
		"retries": 3.0,
		"enabled": true,
	}

	assert.Equal(t, 3.0, Substitute("${retries}", vars))
	assert.Equal(t, true, Substitute("${enabled}", vars))

	// Embedded placeholders always stringify
	assert.Equal(t, "retries=3", Substitute("retries=${retries}", vars))
}

func TestSubstitute_NestedStructures(t *testing.T) {
	template := map[string]any{
		"name":  "${serviceName}",
		"email": map[string]any{"from": "noreply@${domain}"},
		"channels": []any{
			"email",
			map[string]any{"topic": "${serviceName}-events"},
		},
		"maxRetries": 5.0,
	}

	vars := map[string]any{
		"serviceName": "billing",
		"domain":      "example.com",
	}

	result, ok := Substitute(template, vars).(map[string]any)
	assert.True(t, ok)

	assert.Equal(t, "billing", result["name"])
	assert.Equal(t, map[string]any{"from": "noreply@example.com"}, result["email"])
	assert.Equal(t, 5.0, result["maxRetries"])

	channels, ok := result["channels"].([]any)
	assert.True(t, ok)
	assert.Equal(t, "email", channels[0])
	assert.Equal(t, map[string]any{"topic": "billing-events"}, channels[1])
}

func TestSubstitute_DoesNotMutateInput(t *testing.T) {
	template := map[string]any{"name": "${serviceName}"}

	Substitute(template, map[string]any{"serviceName": "x"})

	assert.Equal(t, "${serviceName}", template["name"])
}

func TestSubstitute_UnknownVariableLeftInPlace(t *testing.T) {
	result := Substitute("${missing}", map[string]any{})
	assert.Equal(t, "${missing}", result)

	result = Substitute("a-${missing}-b", map[string]any{})
	assert.Equal(t, "a-${missing}-b", result)
}
