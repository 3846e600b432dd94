package scam

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RiskLevel
	}{
		{
			name:  "urgency keyword",
			input: "URGENTE: verifichi subito il suo account",
			want:  RiskDanger,
		},
		{
			name:  "danger beats safe sender marker",
			input: "Poste Italiane: inserisca i suoi dati bancari per sbloccare il conto",
			want:  RiskDanger,
		},
		{
			name:  "legitimate maintenance notice",
			input: "Gentile cliente, manutenzione programmata dei nostri sistemi dalle 02:00",
			want:  RiskSafe,
		},
		{
			name:  "prize bait",
			input: "Congratulazioni! Ha vinto un premio esclusivo",
			want:  RiskWarning,
		},
		{
			name:  "safe marker beats warning bait",
			input: "Agenzia delle Entrate: promozione del nuovo servizio online",
			want:  RiskSafe,
		},
		{
			name:  "no keywords defaults to safe",
			input: "ci vediamo domani al mercato",
			want:  RiskSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyCuratedExamples(t *testing.T) {
	for _, ex := range Examples() {
		t.Run(ex.Id, func(t *testing.T) {
			if got := Classify(ex.Content); got != ex.RiskLevel {
				t.Errorf("Classify = %v, want %v", got, ex.RiskLevel)
			}
		})
	}
}
