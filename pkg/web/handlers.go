package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/services"
	"github.com/configforge/configforge/pkg/synthesis"
	"github.com/configforge/configforge/pkg/wizard"
)

// APIHandlers holds the wizard API's HTTP endpoints.
type APIHandlers struct {
	repo      *schemas.Repository
	generator *services.Generator
	sessions  *wizard.Store
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAPIHandlers creates the handler set.
func NewAPIHandlers(
	repo *schemas.Repository,
	generator *services.Generator,
	sessions *wizard.Store,
	validate *validator.Validate,
	logger *slog.Logger,
) *APIHandlers {
	return &APIHandlers{
		repo:      repo,
		generator: generator,
		sessions:  sessions,
		validator: validate,
		logger:    logger.With("module", "web"),
	}
}

// GetSections lists every known section name in discovery order.
func (h *APIHandlers) GetSections(c fiber.Ctx) error {
	names, err := h.repo.List()
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"sections": names})
}

// GetSection returns one section's schema document.
func (h *APIHandlers) GetSection(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "Section name is required")
	}

	section, err := h.repo.Section(name)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(section.Raw)
}

// GetSectionOrder reports the computed required-first order plus the
// hand-authored display order. The computed split always gates progression;
// the display list is presentation-only.
func (h *APIHandlers) GetSectionOrder(c fiber.Ctx) error {
	order, err := h.repo.Order()
	if err != nil {
		return internalError(c, err)
	}

	preConfigured, err := h.repo.PreConfigured()
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(SectionOrderResponse{
		Order:         order.Sections,
		Required:      order.Required,
		PreConfigured: preConfigured,
		DisplayOrder:  h.repo.DisplayOrder(),
	})
}

// GenerateConfig runs the oracle-backed generation pipeline for a section.
func (h *APIHandlers) GenerateConfig(c fiber.Ctx) error {
	var req GenerateConfigRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	value, err := h.generator.Generate(c.Context(), req.Section, req.Details)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(GenerateConfigResponse{Section: req.Section, Config: value})
}

// ValidateConfig validates submitted content against one section schema or,
// without a section, against every known section of a full config document.
func (h *APIHandlers) ValidateConfig(c fiber.Ctx) error {
	var req ValidateConfigRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.generator.ValidateConfig(req.Config, req.Section)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(result)
}

// WizardNext answers the stateless question flow: given a section and the
// answers collected so far, return the next unanswered question or the
// synthesized section value.
func (h *APIHandlers) WizardNext(c fiber.Ctx) error {
	var req WizardNextRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	section, err := h.repo.Section(req.SectionID)
	if err != nil {
		return handleServiceError(c, err)
	}

	questions := wizard.Questions(section)

	if question, ok := wizard.NextQuestion(req.Answers, questions); ok {
		return c.JSON(WizardNextResponse{
			Done:     false,
			ID:       question.ID,
			Question: question.Question,
			Example:  question.Example,
			Type:     question.Type,
		})
	}

	value := synthesis.Synthesize(section, req.Answers, questions)

	return c.JSON(WizardNextResponse{Done: true, SectionConfig: value})
}

// CreateSession starts an interactive wizard session and returns its first
// question.
func (h *APIHandlers) CreateSession(c fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := wizard.NewSession(h.repo, req.ServiceName)
	if err != nil {
		return internalError(c, err)
	}

	h.sessions.Add(session)

	h.logger.Info("Wizard session started", "session_id", session.ID, "service", req.ServiceName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sessionId": session.ID,
		"step":      session.Current(),
	})
}

// SessionMessage feeds one user message into a session's state machine.
func (h *APIHandlers) SessionMessage(c fiber.Ctx) error {
	id := c.Params("id")

	session, ok := h.sessions.Get(id)
	if !ok {
		return notFound(c, "Wizard session not found")
	}

	var req SessionMessageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	step, err := session.Submit(req.Text)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(step)
}

// GetSessionConfig returns a session's current full-config projection.
func (h *APIHandlers) GetSessionConfig(c fiber.Ctx) error {
	session, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return notFound(c, "Wizard session not found")
	}

	return c.JSON(session.Configuration())
}

// ToggleSection enables or disables an optional section on a session.
// Disable requests on required sections are refused.
func (h *APIHandlers) ToggleSection(c fiber.Ctx) error {
	session, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return notFound(c, "Wizard session not found")
	}

	name := c.Params("section")

	var req struct {
		Enabled *bool `json:"enabled" validate:"required"`
	}

	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if *req.Enabled {
		session.Accumulator().EnableSection(name)
	} else if !session.Accumulator().DisableSection(name) {
		return badRequest(c, "Required sections cannot be disabled")
	}

	return c.JSON(session.Configuration())
}

// GetSessionMessages returns the session's advisory chat log.
func (h *APIHandlers) GetSessionMessages(c fiber.Ctx) error {
	session, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return notFound(c, "Wizard session not found")
	}

	return c.JSON(fiber.Map{"messages": session.Messages()})
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	names, err := h.repo.List()

	status := "healthy"
	message := "ConfigForge API is healthy"
	httpStatus := http.StatusOK

	if err != nil {
		status = "unhealthy"
		message = "ConfigForge API is unhealthy"
		httpStatus = http.StatusInternalServerError
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"schemas": len(names),
		},
		"timestamp": time.Now().UTC(),
	})
}
