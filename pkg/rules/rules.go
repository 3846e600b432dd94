package rules

import "strings"

// AccessMessagePrefix marks follow-up entries that are not quick replies but
// references to a service access-message intent.
const AccessMessagePrefix = "access_message_"

// Intent is one named conversational purpose, recognized by substring
// containment of any of its patterns.
type Intent struct {
	Name      string
	Patterns  []string
	Responses []string
	Actions   []string
	FollowUp  []string
}

// AccessFollowUp returns the access-message intent name when the intent's
// only follow-up is an access marker.
func (i Intent) AccessFollowUp() (string, bool) {
	if len(i.FollowUp) == 1 && strings.HasPrefix(i.FollowUp[0], AccessMessagePrefix) {
		return i.FollowUp[0], true
	}
	return "", false
}

type FAQEntry struct {
	Question string
	Answer   string
}

type QuickAction struct {
	Key    string
	Text   string
	Action string
}

// Table is the static rule table: intents in priority order, exact-substring
// FAQ entries, per-route contextual help and the quick actions exposed to
// the UI. Injected into the assistant service, never mutated.
type Table struct {
	Intents        []Intent
	FAQ            []FAQEntry
	ContextualHelp map[string]string
	QuickActions   []QuickAction
}

// Intent looks an intent up by name.
func (t Table) Intent(name string) (Intent, bool) {
	for _, it := range t.Intents {
		if it.Name == name {
			return it, true
		}
	}
	return Intent{}, false
}

// FAQAnswer returns the first FAQ answer whose question is contained in the
// normalized input.
func (t Table) FAQAnswer(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, entry := range t.FAQ {
		if strings.Contains(normalized, entry.Question) {
			return entry.Answer, true
		}
	}
	return "", false
}
