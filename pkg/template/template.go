// Package template provides variable substitution for pre-configured
// section templates.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_.-]+)\}`)

// Substitute walks an arbitrary JSON value and replaces `${var}` placeholders
// on string leaves with values from vars. Traversal is pure: the input is
// never mutated, a new value is returned.
//
// A string that consists of exactly one placeholder resolves to the variable
// value itself, preserving its type. Placeholders embedded in a longer string
// are replaced with the variable's string form. Unknown variables are left
// in place so missing bindings stay visible.
func Substitute(value any, vars map[string]any) any {
	switch v := value.(type) {
	case string:
		return substituteString(v, vars)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Substitute(item, vars)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Substitute(item, vars)
		}

		return out
	default:
		return value
	}
}

func substituteString(s string, vars map[string]any) any {
	match := placeholderPattern.FindStringSubmatch(s)
	if match != nil && match[0] == s {
		if value, ok := vars[match[1]]; ok {
			return value
		}

		return s
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(placeholder string) string {
		name := placeholderPattern.FindStringSubmatch(placeholder)[1]

		value, ok := vars[name]
		if !ok {
			return placeholder
		}

		return stringify(value)
	})
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return strings.TrimSpace(fmt.Sprint(value))
}
