// Package web provides the HTTP request and response types for the
// configuration wizard API.
package web

import "github.com/configforge/configforge/pkg/models"

// GenerateConfigRequest asks the oracle-backed pipeline to produce one
// section's content from free-text details.
type GenerateConfigRequest struct {
	Section string         `json:"section" validate:"required,min=1"`
	Details map[string]any `json:"details"`
}

// ValidateConfigRequest validates submitted content. Section is optional:
// without it the config is treated as a full multi-section document.
type ValidateConfigRequest struct {
	Config  any    `json:"config"  validate:"required"`
	Section string `json:"section"`
}

// WizardNextRequest drives the stateless question flow for one section.
type WizardNextRequest struct {
	SectionID string         `json:"sectionId" validate:"required,min=1"`
	Answers   map[string]any `json:"answers"`
}

// WizardNextResponse is either the next question or the finished section.
type WizardNextResponse struct {
	Done          bool   `json:"done"`
	ID            string `json:"id,omitempty"`
	Question      string `json:"question,omitempty"`
	Example       string `json:"example,omitempty"`
	Type          string `json:"type,omitempty"`
	SectionConfig any    `json:"sectionConfig,omitempty"`
}

// CreateSessionRequest starts an interactive wizard session.
type CreateSessionRequest struct {
	ServiceName string `json:"serviceName" validate:"required,min=1"`
}

// SessionMessageRequest feeds one user message into a session.
type SessionMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// SectionOrderResponse reports both order sources: the computed
// required-first order that gates progression, and the hand-authored
// display order, exposed verbatim for presentation.
type SectionOrderResponse struct {
	Order         []string `json:"order"`
	Required      []string `json:"required"`
	PreConfigured []string `json:"preConfigured"`
	DisplayOrder  []string `json:"displayOrder,omitempty"`
}

// GenerateConfigResponse carries a successfully generated section value.
type GenerateConfigResponse struct {
	Section string `json:"section"`
	Config  any    `json:"config"`
}

// ValidationFailureResponse carries the full violation list for content
// that did not satisfy its schema.
type ValidationFailureResponse struct {
	Error            string                   `json:"error"`
	ValidationErrors []models.ValidationError `json:"validationErrors"`
}
