// Package accumulator owns the single mutable configuration object built up
// over one wizard session.
package accumulator

import (
	"sync"

	"github.com/configforge/configforge/pkg/models"
)

// Accumulator collects per-section configuration values for one session.
// Each session gets its own accumulator; the mutex only guards against the
// session's own concurrent HTTP requests.
type Accumulator struct {
	serviceName string
	required    func(name string) bool

	mu       sync.RWMutex
	order    []string
	sections map[string]any
}

// New creates an accumulator for a named service. The required predicate
// gates section disabling; a nil predicate treats every section as optional.
func New(serviceName string, required func(name string) bool) *Accumulator {
	if required == nil {
		required = func(string) bool { return false }
	}

	return &Accumulator{
		serviceName: serviceName,
		required:    required,
		sections:    make(map[string]any),
	}
}

// ServiceName returns the service this configuration is for.
func (a *Accumulator) ServiceName() string {
	return a.serviceName
}

// SetSection replaces a section's content wholesale.
func (a *Accumulator) SetSection(name string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.sections[name]; !exists {
		a.order = append(a.order, name)
	}

	a.sections[name] = value
}

// Section returns a section's current content.
func (a *Accumulator) Section(name string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	value, ok := a.sections[name]

	return value, ok
}

// EnableSection adds an empty placeholder for a section. It is a no-op when
// the section already has content.
func (a *Accumulator) EnableSection(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.sections[name]; exists {
		return
	}

	a.order = append(a.order, name)
	a.sections[name] = map[string]any{}
}

// DisableSection removes a section entirely. Required sections are
// structurally mandatory, so disabling one is refused: the call returns
// false and the existing value is left untouched.
func (a *Accumulator) DisableSection(name string) bool {
	if a.required(name) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.sections[name]; !exists {
		return true
	}

	delete(a.sections, name)

	for i, existing := range a.order {
		if existing == name {
			a.order = append(a.order[:i], a.order[i+1:]...)

			break
		}
	}

	return true
}

// Project returns the full-config view: serviceName, the enabledSections
// bookkeeping list (every section key, in insertion order), and the section
// contents.
func (a *Accumulator) Project() models.Configuration {
	a.mu.RLock()
	defer a.mu.RUnlock()

	sections := make(map[string]any, len(a.sections))
	for name, value := range a.sections {
		sections[name] = value
	}

	return models.Configuration{
		ServiceName:     a.serviceName,
		EnabledSections: append([]string(nil), a.order...),
		Sections:        sections,
	}
}
