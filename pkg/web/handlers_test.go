package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/configforge/configforge/pkg/models"
	"github.com/configforge/configforge/pkg/oracle"
	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/services"
	"github.com/configforge/configforge/pkg/web"
	"github.com/configforge/configforge/pkg/wizard"
)

func writeTestSchemas(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("module.json", `{
		"type": "object",
		"required": true,
		"properties": {
			"module": {"type": "string"},
			"service": {"type": "string"}
		},
		"questions": [
			{"id": "module", "question": "What is the module called?", "example": "loans"},
			{"id": "service", "question": "Which service does it belong to?"}
		]
	}`)

	write("billing.json", `{
		"type": "object",
		"properties": {
			"plan": {"type": "string"}
		}
	}`)

	write("service.schema.json", `{"displayOrder": ["module", "billing"]}`)

	return dir
}

func setupTestApp(t *testing.T, completion oracle.Oracle) *fiber.App {
	t.Helper()

	repo, err := schemas.NewRepository(writeTestSchemas(t), slog.Default())
	require.NoError(t, err)

	if completion == nil {
		completion = &oracle.Static{Response: "{}"}
	}

	generator := services.NewGenerator(repo, completion, slog.Default())
	handlers := web.NewAPIHandlers(repo, generator, wizard.NewStore(),
		validator.New(validator.WithRequiredStructEnabled()), slog.Default())

	app := fiber.New()

	app.Get("/sections", handlers.GetSections)
	app.Get("/sections/:name", handlers.GetSection)
	app.Get("/section-order", handlers.GetSectionOrder)
	app.Post("/generate-config", handlers.GenerateConfig)
	app.Post("/validate-config", handlers.ValidateConfig)
	app.Post("/wizard/next", handlers.WizardNext)
	app.Post("/wizard/sessions", handlers.CreateSession)
	app.Post("/wizard/sessions/:id/message", handlers.SessionMessage)
	app.Get("/wizard/sessions/:id/config", handlers.GetSessionConfig)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target))
}

func TestGetSection(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sections/module", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	decodeBody(t, resp, &doc)
	assert.Equal(t, "object", doc["type"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sections/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetSectionOrder(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/section-order", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var order web.SectionOrderResponse
	decodeBody(t, resp, &order)

	assert.Equal(t, []string{"module", "billing"}, order.Order)
	assert.Equal(t, []string{"module"}, order.Required)
	assert.Equal(t, []string{"module", "billing"}, order.DisplayOrder)
}

func TestGenerateConfig(t *testing.T) {
	completion := &oracle.Static{Response: "```json\n{\"module\": \"loans\", \"service\": \"origination\"}\n```"}
	app := setupTestApp(t, completion)

	resp := postJSON(t, app, "/generate-config", web.GenerateConfigRequest{
		Section: "module",
		Details: map[string]any{"name": "loans"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result web.GenerateConfigResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, "module", result.Section)

	config, ok := result.Config.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "loans", config["module"])
}

func TestGenerateConfig_MalformedOracleOutput(t *testing.T) {
	completion := &oracle.Static{Response: "```json\n{not valid}\n```"}
	app := setupTestApp(t, completion)

	resp := postJSON(t, app, "/generate-config", web.GenerateConfigRequest{Section: "module"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "{not valid}", body["rawOutput"])
}

func TestGenerateConfig_OracleFailure(t *testing.T) {
	completion := &oracle.Static{Err: oracle.ErrUnavailable}
	app := setupTestApp(t, completion)

	resp := postJSON(t, app, "/generate-config", web.GenerateConfigRequest{Section: "module"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestValidateConfig(t *testing.T) {
	app := setupTestApp(t, nil)

	resp := postJSON(t, app, "/validate-config", web.ValidateConfigRequest{
		Config:  map[string]any{"module": "loans"},
		Section: "module",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.ValidationResult
	decodeBody(t, resp, &result)
	assert.True(t, result.Valid)
}

func TestWizardNext(t *testing.T) {
	app := setupTestApp(t, nil)

	// No answers yet: the first question comes back
	resp := postJSON(t, app, "/wizard/next", web.WizardNextRequest{SectionID: "module"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var next web.WizardNextResponse
	decodeBody(t, resp, &next)
	assert.False(t, next.Done)
	assert.Equal(t, "module", next.ID)
	assert.Equal(t, "loans", next.Example)

	// All answers present: the synthesized section comes back
	resp = postJSON(t, app, "/wizard/next", web.WizardNextRequest{
		SectionID: "module",
		Answers:   map[string]any{"module": "loans", "service": "origination"},
	})

	decodeBody(t, resp, &next)
	assert.True(t, next.Done)
	assert.Equal(t,
		map[string]any{"module": "loans", "service": "origination"},
		next.SectionConfig)
}

func TestWizardSessionFlow(t *testing.T) {
	app := setupTestApp(t, nil)

	resp := postJSON(t, app, "/wizard/sessions", web.CreateSessionRequest{ServiceName: "loan-service"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		SessionID string `json:"sessionId"`
		Step      struct {
			Section  string               `json:"section"`
			Question *models.QuestionSpec `json:"question"`
		} `json:"step"`
	}

	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, "module", created.Step.Section)

	messagePath := "/wizard/sessions/" + created.SessionID + "/message"

	resp = postJSON(t, app, messagePath, web.SessionMessageRequest{Text: "loans"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var step wizard.StepResult
	decodeBody(t, resp, &step)
	assert.False(t, step.Done)
	require.NotNil(t, step.Question)
	assert.Equal(t, "service", step.Question.ID)

	resp = postJSON(t, app, messagePath, web.SessionMessageRequest{Text: "origination"})
	decodeBody(t, resp, &step)
	assert.True(t, step.Done)
	assert.Equal(t, "billing", step.NextSection)

	resp = postJSON(t, app, messagePath, web.SessionMessageRequest{Text: "skip"})
	decodeBody(t, resp, &step)
	assert.True(t, step.AllDone)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/wizard/sessions/"+created.SessionID+"/config", nil))
	require.NoError(t, err)

	var config map[string]any
	decodeBody(t, resp, &config)
	assert.Equal(t, "loan-service", config["serviceName"])
	assert.Equal(t, map[string]any{"module": "loans", "service": "origination"}, config["module"])
}

func TestSessionMessage_UnknownSession(t *testing.T) {
	app := setupTestApp(t, nil)

	resp := postJSON(t, app, "/wizard/sessions/nope/message", web.SessionMessageRequest{Text: "hi"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
