package helpers

import (
	"math/rand"
	"testing"
)

func TestDetectFrustration(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"non riesco ad entrare", true},
		{"è troppo difficile per me", true},
		{"NON FUNZIONA niente", true},
		{"tutto chiaro, procediamo", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := DetectFrustration(tt.input); got != tt.want {
			t.Errorf("DetectFrustration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDetectSuccess(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"grazie mille", true},
		{"ce l'ho fatta!", true},
		{"adesso funziona", true},
		{"non so cosa fare", false},
	}
	for _, tt := range tests {
		if got := DetectSuccess(tt.input); got != tt.want {
			t.Errorf("DetectSuccess(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSimpleExplanation(t *testing.T) {
	term, explanation, ok := SimpleExplanation("cos'è il BROWSER?")
	if !ok || term != "browser" {
		t.Fatalf("term = %q, ok = %v", term, ok)
	}
	if explanation != SimpleExplanations["browser"] {
		t.Errorf("explanation = %q", explanation)
	}

	if _, _, ok := SimpleExplanation("motore a scoppio"); ok {
		t.Error("unexpected match")
	}
}

func TestSimpleExplanationOrderIsStable(t *testing.T) {
	// "password" comes before "email" in lookup order.
	term, _, ok := SimpleExplanation("password della email")
	if !ok || term != "password" {
		t.Errorf("term = %q, ok = %v; want password", term, ok)
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"a", "b", "c"}
	for i := 0; i < 10; i++ {
		got := Pick(rng, pool)
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("Pick returned %q, not in pool", got)
		}
	}
	if got := Pick(rng, nil); got != "" {
		t.Errorf("Pick(nil) = %q, want empty", got)
	}
}
