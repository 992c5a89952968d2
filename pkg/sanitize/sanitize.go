// Package sanitize turns raw completion-oracle output into parsed JSON
// values, stripping the markdown formatting oracles tend to add.
package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches output wrapped in a markdown code fence, with or
// without a json language tag.
var fencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*\\n?(.*?)\\n?```$")

// ErrOutputParse indicates oracle output that is not valid JSON after fence
// stripping. The stripped text is kept on the error for debuggability.
var ErrOutputParse = errors.New("oracle output is not valid JSON")

// ParseError carries the stripped text that failed to parse.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrOutputParse, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrOutputParse
}

// Strip removes a surrounding markdown code fence and whitespace from raw
// oracle output. Unfenced output is returned trimmed.
func Strip(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if match := fencePattern.FindStringSubmatch(trimmed); match != nil {
		return strings.TrimSpace(match[1])
	}

	return trimmed
}

// Parse decodes stripped oracle output as JSON. Failures are never silently
// coerced; the caller gets a ParseError with the offending text attached.
func Parse(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	return value, nil
}

// RepairModuleRefs applies the consistency rule for generated module
// configs: when a top-level object has both a `module` field and a
// `documents` array, every document's `module` field is overwritten with
// the top-level value. The rule runs unconditionally after parsing and
// before validation.
func RepairModuleRefs(value any) any {
	object, ok := value.(map[string]any)
	if !ok {
		return value
	}

	module, hasModule := object["module"]
	documents, hasDocuments := object["documents"].([]any)

	if !hasModule || !hasDocuments {
		return value
	}

	for _, document := range documents {
		if entry, ok := document.(map[string]any); ok {
			entry["module"] = module
		}
	}

	return value
}
