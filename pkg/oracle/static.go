package oracle

import (
	"context"
	"sync"
)

// Static is an Oracle that replays canned responses, for tests and offline
// development. It records every prompt it receives.
type Static struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

// Complete returns the configured response or error.
func (s *Static) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}

	return s.Response, nil
}

// Prompts returns a copy of the prompts seen so far.
func (s *Static) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.prompts...)
}
