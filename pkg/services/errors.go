// Package services wires the generation pipeline: prompt building, oracle
// completion, sanitization, validation and accumulation.
package services

import (
	"errors"
	"fmt"

	"github.com/configforge/configforge/pkg/models"
	"github.com/configforge/configforge/pkg/oracle"
	"github.com/configforge/configforge/pkg/sanitize"
	"github.com/configforge/configforge/pkg/schemas"
)

// ErrGenerationFailed wraps oracle failures. The section simply stays
// unanswered; the user retries or rephrases.
var ErrGenerationFailed = errors.New("could not generate configuration")

// ValidationFailedError reports that generated or submitted content does
// not satisfy its section schema. It carries the full violation list,
// never just the first error.
type ValidationFailedError struct {
	Section string
	Errors  []models.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("section %q failed schema validation with %d violation(s)", e.Section, len(e.Errors))
}

// AsValidationFailed extracts a ValidationFailedError from an error chain.
func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var validationErr *ValidationFailedError
	ok := errors.As(err, &validationErr)

	return validationErr, ok
}

// IsSchemaNotFound checks for an unknown section name.
func IsSchemaNotFound(err error) bool {
	return schemas.IsNotFound(err)
}

// IsSchemaParse checks for a malformed section schema document.
func IsSchemaParse(err error) bool {
	return schemas.IsParseError(err)
}

// IsOracleFailure checks for a recoverable completion failure.
func IsOracleFailure(err error) bool {
	return errors.Is(err, ErrGenerationFailed) || oracle.IsUnavailable(err)
}

// IsOutputParse checks for oracle output that was not valid JSON.
func IsOutputParse(err error) bool {
	return errors.Is(err, sanitize.ErrOutputParse)
}
