package rules

import (
	"testing"
)

func TestMatch(t *testing.T) {
	m := NewMatcher(DefaultTable())

	tests := []struct {
		name           string
		input          string
		wantIntent     string
		wantMatch      bool
		wantConfidence float64
	}{
		{
			name:           "exact greeting",
			input:          "ciao",
			wantIntent:     "greeting",
			wantMatch:      true,
			wantConfidence: 1.0,
		},
		{
			name:           "pension keyword in short sentence",
			input:          "la mia pensione",
			wantIntent:     "pension",
			wantMatch:      true,
			wantConfidence: float64(len("pensione")) / float64(len("la mia pensione")),
		},
		{
			name:           "longer pattern outranks shorter",
			input:          "domanda pensione",
			wantIntent:     "pension_application_intent",
			wantMatch:      true,
			wantConfidence: 1.0,
		},
		{
			name:           "faq short-circuits with full confidence",
			input:          "cos'è spid",
			wantIntent:     FAQIntentName,
			wantMatch:      true,
			wantConfidence: 1.0,
		},
		{
			name:      "no pattern hit",
			input:     "qwerty",
			wantMatch: false,
		},
		{
			name:      "empty input",
			input:     "   ",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := m.Match(tt.input)

			if ok != tt.wantMatch {
				t.Fatalf("Match ok = %v, want %v", ok, tt.wantMatch)
			}
			if !tt.wantMatch {
				return
			}
			if match.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", match.Intent, tt.wantIntent)
			}
			if match.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", match.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestMatchKeepsEarlierIntentOnTie(t *testing.T) {
	table := Table{
		Intents: []Intent{
			{Name: "first", Patterns: []string{"abcd"}},
			{Name: "second", Patterns: []string{"efgh"}},
		},
	}
	m := NewMatcher(table)

	match, ok := m.Match("abcdefgh")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Intent != "first" {
		t.Errorf("Intent = %q, want %q", match.Intent, "first")
	}
}

func TestAccessFollowUp(t *testing.T) {
	table := DefaultTable()

	pension, ok := table.Intent("pension")
	if !ok {
		t.Fatal("pension intent missing")
	}
	key, hasAccess := pension.AccessFollowUp()
	if !hasAccess || key != "access_message_inps" {
		t.Errorf("AccessFollowUp = %q, %v; want access_message_inps, true", key, hasAccess)
	}

	greeting, ok := table.Intent("greeting")
	if !ok {
		t.Fatal("greeting intent missing")
	}
	if _, hasAccess := greeting.AccessFollowUp(); hasAccess {
		t.Error("greeting should have no access follow-up")
	}
}
