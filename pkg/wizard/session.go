package wizard

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/configforge/configforge/pkg/accumulator"
	"github.com/configforge/configforge/pkg/models"
	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/synthesis"
	"github.com/configforge/configforge/pkg/template"
)

// Session walks one user through the ordered sections, one question at a
// time. It owns the WizardState and the session's accumulator; schema data
// is read through the shared repository and never mutated.
type Session struct {
	ID          string
	ServiceName string

	repo  *schemas.Repository
	order models.SectionOrder

	mu    sync.Mutex
	state *models.WizardState
	acc   *accumulator.Accumulator
	log   []models.ChatMessage
}

// StepResult is the state machine's answer to one submission.
type StepResult struct {
	// Done reports that a section was completed by this step.
	Done bool `json:"done"`
	// AllDone reports that the last section is complete.
	AllDone bool `json:"allDone"`
	// Section is the section the result refers to: the completed one when
	// Done, the active one otherwise.
	Section string `json:"section"`
	// SectionConfig is the finished section's value, set when Done.
	SectionConfig any `json:"sectionConfig,omitempty"`
	// NextSection names the section now awaiting answers, when any remain.
	NextSection string `json:"nextSection,omitempty"`
	// Question is the next question to ask, nil once AllDone.
	Question *models.QuestionSpec `json:"question,omitempty"`
	// Config is the full configuration projection, set once AllDone.
	Config *models.Configuration `json:"config,omitempty"`
}

// NewSession starts a wizard session over the repository's current section
// order. Pre-configured sections without guided questions are populated from
// their templates immediately and skipped.
func NewSession(repo *schemas.Repository, serviceName string) (*Session, error) {
	order, err := repo.Order()
	if err != nil {
		return nil, fmt.Errorf("computing section order: %w", err)
	}

	session := &Session{
		ID:          uuid.NewString(),
		ServiceName: serviceName,
		repo:        repo,
		order:       order,
		state:       models.NewWizardState(),
		acc:         accumulator.New(serviceName, repo.IsRequired),
	}

	session.applyPreConfigured()

	return session, nil
}

// Current returns the active section and its next question without
// consuming input. Once every section is done it reports AllDone.
func (s *Session) Current() *StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return s.allDoneResult()
	}

	name := s.order.Sections[s.state.SectionIndex]

	result := &StepResult{Section: name}

	if section, err := s.repo.Section(name); err == nil {
		if question, ok := NextQuestion(s.state.SectionAnswers(name), Questions(section)); ok {
			result.Question = &question
		}
	}

	return result
}

// Submit feeds one free-text input into the state machine. Intent detection
// runs first; anything that matches no intent pattern becomes the answer to
// the current question.
func (s *Session) Submit(input string) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessage("user", input, nil)

	if s.finished() {
		return s.allDoneResult(), nil
	}

	name := s.order.Sections[s.state.SectionIndex]

	section, err := s.repo.Section(name)
	if err != nil {
		return nil, fmt.Errorf("loading section %q: %w", name, err)
	}

	questions := Questions(section)
	answers := s.state.SectionAnswers(name)

	switch DetectIntent(input) {
	case IntentUseDefault:
		return s.completeSection(section, s.renderTemplate(section)), nil

	case IntentSkip:
		return s.completeSection(section, s.synthesize(section, answers, questions)), nil

	case IntentContinue:
		// Advance without touching the answers.

	default:
		if question, ok := NextQuestion(answers, questions); ok {
			answers[question.ID] = input
		}
	}

	if question, ok := NextQuestion(answers, questions); ok {
		s.appendMessage("assistant", question.Question, nil)

		return &StepResult{Section: name, Question: &question}, nil
	}

	return s.completeSection(section, s.synthesize(section, answers, questions)), nil
}

// Configuration returns the session's current full-config projection.
func (s *Session) Configuration() models.Configuration {
	return s.acc.Project()
}

// Accumulator exposes the session's config store for enable/disable calls.
func (s *Session) Accumulator() *accumulator.Accumulator {
	return s.acc
}

// Messages returns a copy of the advisory chat log.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.ChatMessage(nil), s.log...)
}

func (s *Session) finished() bool {
	return s.state.SectionIndex >= len(s.order.Sections)
}

func (s *Session) completeSection(section *models.SectionSchema, value any) *StepResult {
	s.acc.SetSection(section.Name, value)
	s.state.Done[section.Name] = true
	s.state.SectionIndex++

	s.applyPreConfigured()

	result := &StepResult{
		Done:          true,
		Section:       section.Name,
		SectionConfig: value,
	}

	s.appendMessage("assistant", fmt.Sprintf("Section %q is complete.", section.Name), value)

	if s.finished() {
		result.AllDone = true
		config := s.acc.Project()
		result.Config = &config

		return result
	}

	next := s.order.Sections[s.state.SectionIndex]
	result.NextSection = next

	if nextSection, err := s.repo.Section(next); err == nil {
		if question, ok := NextQuestion(s.state.SectionAnswers(next), Questions(nextSection)); ok {
			result.Question = &question
			s.appendMessage("assistant", question.Question, nil)
		}
	}

	return result
}

// applyPreConfigured fills sections that carry a template and no guided
// questions, so the wizard never stalls on a question-less section.
func (s *Session) applyPreConfigured() {
	for !s.finished() {
		name := s.order.Sections[s.state.SectionIndex]

		section, err := s.repo.Section(name)
		if err != nil || !section.Metadata.PreConfigured || len(Questions(section)) > 0 {
			return
		}

		s.acc.SetSection(name, s.renderTemplate(section))
		s.state.Done[name] = true
		s.state.SectionIndex++
	}
}

func (s *Session) renderTemplate(section *models.SectionSchema) any {
	value := template.Substitute(section.Metadata.PreConfigTemplate, map[string]any{
		"serviceName": s.ServiceName,
	})
	if value == nil {
		value = map[string]any{}
	}

	return value
}

func (s *Session) synthesize(section *models.SectionSchema, answers map[string]any, questions []models.QuestionSpec) any {
	value := synthesis.Synthesize(section, answers, questions)

	// A derived single-question primitive section unwraps to its bare value.
	if section.Schema != nil && section.Schema.IsPrimitive() {
		if collected, ok := value.(map[string]any); ok {
			if bare, ok := collected["value"]; ok && len(collected) == 1 {
				return bare
			}
		}
	}

	return value
}

func (s *Session) allDoneResult() *StepResult {
	config := s.acc.Project()

	return &StepResult{AllDone: true, Config: &config}
}

func (s *Session) appendMessage(role, text string, config any) {
	s.log = append(s.log, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Config:    config,
		Timestamp: time.Now().UTC(),
	})
}
