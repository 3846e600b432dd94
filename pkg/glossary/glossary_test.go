package glossary

import (
	"testing"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSlang string
		wantFound bool
	}{
		{
			name:      "term inside a question",
			input:     "cos'è il firewall?",
			wantSlang: "Firewall",
			wantFound: true,
		},
		{
			name:      "short input matches longer term name",
			input:     "vpn",
			wantSlang: "VPN (Virtual Private Network)",
			wantFound: true,
		},
		{
			name:      "case insensitive",
			input:     "SPAM",
			wantSlang: "Spam",
			wantFound: true,
		},
		{
			name:      "first match wins on overlapping terms",
			input:     "cosa significa frode phishing",
			wantSlang: "Frode phishing",
			wantFound: true,
		},
		{
			name:      "unknown term",
			input:     "carburatore",
			wantFound: false,
		},
		{
			name:      "empty input",
			input:     "  ",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, found := Search(tt.input)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && term.Slang != tt.wantSlang {
				t.Errorf("Slang = %q, want %q", term.Slang, tt.wantSlang)
			}
		})
	}
}
