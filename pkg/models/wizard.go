package models

import "time"

// WizardState tracks one interactive session's progress through the ordered
// sections: the active section index, the raw answers collected so far, and
// which sections have been finished.
type WizardState struct {
	SectionIndex int `json:"section_index"`

	// Answers maps section name -> question ID -> raw answer.
	Answers map[string]map[string]any `json:"answers"`

	// Done marks sections whose content has been committed.
	Done map[string]bool `json:"done"`
}

// NewWizardState returns an empty state positioned at the first section.
func NewWizardState() *WizardState {
	return &WizardState{
		Answers: make(map[string]map[string]any),
		Done:    make(map[string]bool),
	}
}

// SectionAnswers returns the answer map for a section, creating it on first use.
func (w *WizardState) SectionAnswers(section string) map[string]any {
	answers, ok := w.Answers[section]
	if !ok {
		answers = make(map[string]any)
		w.Answers[section] = answers
	}

	return answers
}

// ChatMessage is one entry of the advisory, append-only conversation log.
// It feeds free text into intent detection but carries no other state.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Config    any       `json:"config,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
