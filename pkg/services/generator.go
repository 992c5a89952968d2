package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/configforge/configforge/pkg/models"
	"github.com/configforge/configforge/pkg/oracle"
	"github.com/configforge/configforge/pkg/prompt"
	"github.com/configforge/configforge/pkg/sanitize"
	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/validation"
)

// Generator produces schema-valid section content from free-text details
// via the completion oracle.
type Generator struct {
	repo   *schemas.Repository
	oracle oracle.Oracle
	logger *slog.Logger
}

// NewGenerator creates a generation service.
func NewGenerator(repo *schemas.Repository, completionOracle oracle.Oracle, logger *slog.Logger) *Generator {
	return &Generator{
		repo:   repo,
		oracle: completionOracle,
		logger: logger.With("module", "generator"),
	}
}

// Generate runs the full pipeline for one section: build the prompt, ask
// the oracle, strip formatting fences, parse, repair module references and
// validate against the section schema. Validation failures return the full
// violation list via ValidationFailedError.
func (g *Generator) Generate(ctx context.Context, sectionName string, details map[string]any) (any, error) {
	section, err := g.repo.Section(sectionName)
	if err != nil {
		return nil, err
	}

	promptText := prompt.Build(sectionName, section, details)

	raw, err := g.oracle.Complete(ctx, promptText)
	if err != nil {
		g.logger.Warn("Oracle completion failed", "section", sectionName, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	value, err := sanitize.Parse(sanitize.Strip(raw))
	if err != nil {
		g.logger.Warn("Oracle output was not valid JSON", "section", sectionName, "error", err)

		return nil, err
	}

	value = sanitize.RepairModuleRefs(value)

	result, err := validation.Validate(value, section.ValidationDocument())
	if err != nil {
		return nil, &schemas.ParseError{Section: sectionName, Err: err}
	}

	if !result.Valid {
		return nil, &ValidationFailedError{Section: sectionName, Errors: result.Errors}
	}

	return value, nil
}

// ValidateConfig validates submitted content. With a section name, the
// value is checked against that single schema. Without one, every known
// top-level section key of the config object is checked against its own
// schema; unknown keys are reported as violations.
func (g *Generator) ValidateConfig(config any, sectionName string) (models.ValidationResult, error) {
	if sectionName != "" {
		section, err := g.repo.Section(sectionName)
		if err != nil {
			return models.ValidationResult{}, err
		}

		return validation.Validate(config, section.ValidationDocument())
	}

	object, ok := config.(map[string]any)
	if !ok {
		return models.ValidationResult{
			Valid: false,
			Errors: []models.ValidationError{{
				Field:   "(root)",
				Message: "full configuration must be an object keyed by section name",
				Code:    "invalid_type",
			}},
		}, nil
	}

	violations := make([]models.ValidationError, 0)

	for _, name := range sortedKeys(object) {
		if name == "serviceName" || name == "enabledSections" {
			continue
		}

		section, err := g.repo.Section(name)
		if err != nil {
			if schemas.IsNotFound(err) {
				violations = append(violations, models.ValidationError{
					Field:   name,
					Message: fmt.Sprintf("%q is not a known section", name),
					Code:    "unknown_section",
				})

				continue
			}

			return models.ValidationResult{}, err
		}

		result, err := validation.Validate(object[name], section.ValidationDocument())
		if err != nil {
			return models.ValidationResult{}, err
		}

		for _, violation := range result.Errors {
			violation.Field = prefixField(name, violation.Field)
			violations = append(violations, violation)
		}
	}

	return models.ValidationResult{Valid: len(violations) == 0, Errors: violations}, nil
}

func prefixField(section, field string) string {
	if field == "" || field == "(root)" {
		return section
	}

	return section + "." + field
}
