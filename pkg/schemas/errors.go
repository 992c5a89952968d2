// Package schemas loads and caches per-section JSON Schema documents and
// computes the canonical section order.
package schemas

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaNotFound indicates an unknown section name. Callers treat
	// this as "section has no further detail", not as a fatal condition.
	ErrSchemaNotFound = errors.New("section schema not found")

	// ErrSchemaParse indicates a schema document that exists but is not
	// valid JSON. The section is skipped during discovery instead of
	// aborting the whole repository.
	ErrSchemaParse = errors.New("section schema is malformed")
)

// ParseError names the section whose document could not be parsed.
type ParseError struct {
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema for section %q is malformed: %v", e.Section, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrSchemaParse
}

// IsNotFound checks if an error means the section has no schema document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSchemaNotFound)
}

// IsParseError checks if an error means a schema document is malformed.
func IsParseError(err error) bool {
	return errors.Is(err, ErrSchemaParse)
}
