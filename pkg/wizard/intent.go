// Package wizard drives the section-by-section progression of a
// configuration session.
package wizard

import (
	"regexp"
	"strings"
)

// Intent classifies free-text input before normal answer handling.
type Intent int

const (
	// IntentAnswer is the fall-through: the raw text answers the current question.
	IntentAnswer Intent = iota
	// IntentUseDefault accepts the section's pre-configured template verbatim.
	IntentUseDefault
	// IntentSkip completes the section with whatever partial answers exist.
	IntentSkip
	// IntentContinue advances without modifying the current answers.
	IntentContinue
)

type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// intentRules is a finite table evaluated in priority order over the
// lowercased, trimmed input. Deliberately no stemming or fuzzy matching:
// detection must stay deterministic and testable. Ambiguous inputs fall
// through to IntentAnswer.
var intentRules = []intentRule{
	{IntentUseDefault, regexp.MustCompile(`\b(?:use|keep|apply)\b(?:\s+\w+)?\s+defaults?\b`)},
	{IntentSkip, regexp.MustCompile(`^(?:skip|next|move on)[.!]?$`)},
	{IntentContinue, regexp.MustCompile(`^(?:yes|yeah|ok|okay|fine|sure)(?:[,.!]?\s+(?:next|proceed|continue|move on))?[.!]?$`)},
}

// DetectIntent matches input against the intent table.
func DetectIntent(input string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, rule := range intentRules {
		if rule.pattern.MatchString(normalized) {
			return rule.intent
		}
	}

	return IntentAnswer
}
