package catalog

import (
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ho bisogno del dottore", "sanità prenotazione"},
		{"dove sono i miei soldi", "pensioni inps"},
		{"devo fare il 730", "agenzia entrate"},
		{"posta certificata", "posta certificata"},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.input); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	results := c.Search("pensione")
	if len(results) == 0 {
		t.Fatal("expected results for pensione")
	}
	if results[0].Id != "inps" {
		t.Errorf("first result = %q, want inps", results[0].Id)
	}

	if results := c.Search("dottore"); len(results) == 0 {
		t.Error("rewritten query should find the health service")
	}

	if results := c.Search("  "); results != nil {
		t.Errorf("blank query returned %v", results)
	}
}

func TestService(t *testing.T) {
	c := Default()

	s, ok := c.Service("sanita")
	if !ok {
		t.Fatal("sanita service missing")
	}
	if len(s.Operations) == 0 {
		t.Error("sanita has no operations")
	}

	if _, ok := c.Service("nope"); ok {
		t.Error("unexpected service")
	}
}
