package rules

import "strings"

// ConfidenceThreshold is the minimum confidence a match needs before the
// caller may act on it. Sub-threshold matches behave as no-match so short
// filler words don't trigger intents.
const ConfidenceThreshold = 0.3

// FAQIntentName is reported for exact FAQ hits, which short-circuit pattern
// matching with full confidence.
const FAQIntentName = "faq"

type Match struct {
	Intent     string
	Confidence float64
}

// Matcher scores free text against a rule table. It is a pure function over
// the injected table and keeps no per-call state.
type Matcher struct {
	table Table
}

func NewMatcher(table Table) *Matcher {
	return &Matcher{table: table}
}

// Match normalizes the input and returns the best-scoring intent, if any.
// FAQ entries win outright; otherwise confidence is the length of the
// matched pattern relative to the input, so longer, more specific patterns
// outrank short incidental substrings. Ties keep the earlier intent in
// table order.
func (m *Matcher) Match(input string) (Match, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Match{}, false
	}

	if _, ok := m.table.FAQAnswer(normalized); ok {
		return Match{Intent: FAQIntentName, Confidence: 1.0}, true
	}

	best := Match{}
	for _, intent := range m.table.Intents {
		for _, pattern := range intent.Patterns {
			if !strings.Contains(normalized, pattern) {
				continue
			}
			confidence := float64(len(pattern)) / float64(len(normalized))
			if confidence > best.Confidence {
				best = Match{Intent: intent.Name, Confidence: confidence}
			}
		}
	}

	if best.Confidence == 0 {
		return Match{}, false
	}
	return best, true
}
