package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/configforge/configforge/pkg/sanitize"
	"github.com/configforge/configforge/pkg/services"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleServiceError maps the error taxonomy onto HTTP responses. Every
// recoverable condition comes back as a structured result; only genuinely
// unexpected errors turn into an opaque 500.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsSchemaNotFound(err):
		return notFound(c, "Unknown section")

	case services.IsSchemaParse(err):
		problem := problems.NewStatusProblem(500).
			WithInstance(c.Path()).
			WithType("schema_parse_error").
			WithDetail(err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(problem)

	case services.IsOutputParse(err):
		response := fiber.Map{
			"error": "The generated output was not valid JSON. Please retry or rephrase.",
		}

		var parseErr *sanitize.ParseError
		if errors.As(err, &parseErr) {
			response["rawOutput"] = parseErr.Raw
		}

		return c.Status(fiber.StatusUnprocessableEntity).JSON(response)

	case services.IsOracleFailure(err):
		problem := problems.NewStatusProblem(502).
			WithInstance(c.Path()).
			WithType("oracle_unavailable").
			WithDetail("Could not generate the configuration. Please retry or rephrase.")

		return c.Status(fiber.StatusBadGateway).JSON(problem)

	default:
		if validationErr, ok := services.AsValidationFailed(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationFailureResponse{
				Error:            validationErr.Error(),
				ValidationErrors: validationErr.Errors,
			})
		}

		return internalError(c, err)
	}
}
