package wizard

import (
	"errors"
	"testing"
)

func testTable() Table {
	return Table{
		Wizards: map[string]Wizard{
			"setup": {
				Id:          "setup",
				Name:        "Setup",
				Description: "Ti guido nella configurazione",
				EntryStep:   "start",
				Steps: map[string]Step{
					"start": {
						Id:      "start",
						Prompt:  "Sei pronto?",
						Options: []string{"Sì", "No", "Fine"},
						Response: map[string]string{
							"Sì":   "Ottimo, andiamo avanti.",
							"No":   "Va bene, torna quando vuoi.",
							"Fine": "Chiudo qui.",
						},
						Actions: map[string][]string{
							"Sì": {"navigateToServices"},
						},
						Next: map[string]string{
							"Sì":   "second",
							"Fine": "missing_step",
						},
					},
					"second": {
						Id:      "second",
						Prompt:  "Ultimo passo.",
						Options: []string{"Ok"},
						Response: map[string]string{
							"Ok": "Finito!",
						},
						Terminal: true,
					},
				},
			},
		},
		Triggers: []Trigger{
			{WizardId: "setup", Match: func(s string) bool { return s == "configura" }},
		},
	}
}

func TestDetect(t *testing.T) {
	e := NewEngine(testTable())

	if id, ok := e.Detect("configura"); !ok || id != "setup" {
		t.Errorf("Detect = %q, %v; want setup, true", id, ok)
	}
	if _, ok := e.Detect("altro"); ok {
		t.Error("Detect matched unrelated input")
	}
}

func TestStart(t *testing.T) {
	e := NewEngine(testTable())

	res, err := e.Start(Cursor{}, "setup")
	if err != nil {
		t.Fatalf("Start error = %v", err)
	}
	if !res.Cursor.IsActive || res.Cursor.WizardId != "setup" || res.Cursor.CurrentStep != "start" {
		t.Errorf("Cursor = %+v, want active at start", res.Cursor)
	}
	if res.Step.Prompt != "Sei pronto?" {
		t.Errorf("Step.Prompt = %q", res.Step.Prompt)
	}

	if _, err := e.Start(res.Cursor, "setup"); !errors.Is(err, ErrWizardActive) {
		t.Errorf("Start on active cursor error = %v, want ErrWizardActive", err)
	}
	if _, err := e.Start(Cursor{}, "nope"); !errors.Is(err, ErrUnknownWizard) {
		t.Errorf("Start unknown wizard error = %v, want ErrUnknownWizard", err)
	}
}

func TestAdvance(t *testing.T) {
	e := NewEngine(testTable())
	active := Cursor{IsActive: true, WizardId: "setup", CurrentStep: "start"}

	t.Run("valid option moves to next step", func(t *testing.T) {
		res, err := e.Advance(active, "Sì")
		if err != nil {
			t.Fatalf("Advance error = %v", err)
		}
		if res.Response != "Ottimo, andiamo avanti." {
			t.Errorf("Response = %q", res.Response)
		}
		if len(res.Actions) != 1 || res.Actions[0] != "navigateToServices" {
			t.Errorf("Actions = %v", res.Actions)
		}
		if res.Next == nil || res.Next.Id != "second" {
			t.Errorf("Next = %+v, want second", res.Next)
		}
		if res.Cursor.CurrentStep != "second" || len(res.Cursor.StepHistory) != 1 || res.Cursor.StepHistory[0] != "start" {
			t.Errorf("Cursor = %+v", res.Cursor)
		}
	})

	t.Run("option without edge ends the wizard", func(t *testing.T) {
		res, err := e.Advance(active, "No")
		if err != nil {
			t.Fatalf("Advance error = %v", err)
		}
		if res.Cursor.IsActive || res.Next != nil {
			t.Errorf("wizard should have ended, cursor = %+v", res.Cursor)
		}
	})

	t.Run("dangling edge ends the wizard", func(t *testing.T) {
		res, err := e.Advance(active, "Fine")
		if err != nil {
			t.Fatalf("Advance error = %v", err)
		}
		if res.Cursor.IsActive || res.Next != nil {
			t.Errorf("wizard should have ended, cursor = %+v", res.Cursor)
		}
	})

	t.Run("terminal step ends even with a valid response", func(t *testing.T) {
		cursor := Cursor{IsActive: true, WizardId: "setup", CurrentStep: "second"}
		res, err := e.Advance(cursor, "Ok")
		if err != nil {
			t.Fatalf("Advance error = %v", err)
		}
		if res.Response != "Finito!" || res.Cursor.IsActive {
			t.Errorf("Response = %q, cursor = %+v", res.Response, res.Cursor)
		}
	})

	t.Run("unmatched selection keeps the cursor", func(t *testing.T) {
		res, err := e.Advance(active, "qualcos'altro")
		if !errors.Is(err, ErrNoMatchingOption) {
			t.Fatalf("error = %v, want ErrNoMatchingOption", err)
		}
		if !res.Cursor.IsActive || res.Cursor.WizardId != "setup" || res.Cursor.CurrentStep != "start" {
			t.Errorf("cursor changed: %+v", res.Cursor)
		}
	})

	t.Run("inactive cursor", func(t *testing.T) {
		if _, err := e.Advance(Cursor{}, "Sì"); !errors.Is(err, ErrNotActive) {
			t.Errorf("error = %v, want ErrNotActive", err)
		}
	})

	t.Run("stale wizard id", func(t *testing.T) {
		cursor := Cursor{IsActive: true, WizardId: "gone", CurrentStep: "start"}
		if _, err := e.Advance(cursor, "Sì"); !errors.Is(err, ErrUnknownWizard) {
			t.Errorf("error = %v, want ErrUnknownWizard", err)
		}
	})
}

func TestDefaultTableTriggers(t *testing.T) {
	e := NewEngine(DefaultTable())

	tests := []struct {
		input  string
		wantId string
	}{
		{"voglio fare domanda di pensione", "pension_application"},
		{"devo prenotare una visita", "health_booking"},
		{"come ottenere spid", "spid_setup"},
		{"devo fare il 730", "tax_declaration"},
		{"domanda pensione e tasse", "pension_application"},
	}

	for _, tt := range tests {
		id, ok := e.Detect(tt.input)
		if !ok || id != tt.wantId {
			t.Errorf("Detect(%q) = %q, %v; want %q", tt.input, id, ok, tt.wantId)
		}
	}
}

func TestDefaultTableGraphsAreClosed(t *testing.T) {
	table := DefaultTable()
	for wizardId, w := range table.Wizards {
		if _, ok := w.Steps[w.EntryStep]; !ok {
			t.Errorf("%s: entry step %q missing", wizardId, w.EntryStep)
		}
		for stepId, step := range w.Steps {
			for option, nextId := range step.Next {
				if _, ok := w.Steps[nextId]; !ok {
					t.Errorf("%s/%s: option %q points at missing step %q", wizardId, stepId, option, nextId)
				}
			}
			for option := range step.Response {
				found := false
				for _, o := range step.Options {
					if o == option {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s/%s: response for %q has no matching option", wizardId, stepId, option)
				}
			}
		}
	}
}
