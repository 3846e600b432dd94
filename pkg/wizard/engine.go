package wizard

import "errors"

var (
	// ErrUnknownWizard is returned when the requested wizard id (or the id
	// stored in a persisted cursor) is not in the table.
	ErrUnknownWizard = errors.New("wizard: unknown wizard id")

	// ErrWizardActive rejects Start while another wizard is in progress.
	// The caller must finish or abandon the active one first.
	ErrWizardActive = errors.New("wizard: another wizard is already active")

	// ErrNoMatchingOption means the user's text is not one of the current
	// step's options. The cursor is unchanged and the caller falls through
	// to ordinary intent handling.
	ErrNoMatchingOption = errors.New("wizard: no matching option for selection")

	// ErrNotActive is returned by Advance on an inactive cursor.
	ErrNotActive = errors.New("wizard: no wizard active")
)

// Step is one node of a wizard graph. Responses maps an option label to the
// reply emitted when the user picks it; Next maps the same label to the
// following step. An option without a Next entry is terminal for that
// branch, as is any step flagged Terminal.
type Step struct {
	Id       string
	Prompt   string
	Options  []string
	Response map[string]string
	Actions  map[string][]string
	Next     map[string]string
	Terminal bool
}

// Wizard is a guided procedure: a graph of steps entered at EntryStep.
type Wizard struct {
	Id          string
	Name        string
	Description string
	EntryStep   string
	Steps       map[string]Step
}

// Table holds every authored wizard plus the ordered trigger rules that map
// free text onto a wizard id.
type Table struct {
	Wizards  map[string]Wizard
	Triggers []Trigger
}

// Trigger is a keyword rule. First matching trigger wins.
type Trigger struct {
	WizardId string
	Match    func(normalized string) bool
}

// Cursor is the engine's view of the per-session wizard state. The engine
// never stores cursors; the caller threads them through.
type Cursor struct {
	IsActive    bool
	WizardId    string
	CurrentStep string
	StepHistory []string
}

// StartResult carries the entry step to render after a successful Start.
type StartResult struct {
	Cursor Cursor
	Intro  string
	Step   Step
}

// AdvanceResult carries the outcome of one advance: the option's response,
// its actions, and the next step to render (nil when the wizard ended).
type AdvanceResult struct {
	Cursor   Cursor
	Response string
	Actions  []string
	Next     *Step
}

// Engine is a pure function space over the injected table. It keeps no
// per-session state.
type Engine struct {
	table Table
}

func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// Detect scans normalized input against the trigger rules and returns the
// wizard id of the first rule that fires.
func (e *Engine) Detect(normalized string) (string, bool) {
	for _, t := range e.table.Triggers {
		if t.Match(normalized) {
			return t.WizardId, true
		}
	}
	return "", false
}

// Start activates wizardId from an inactive cursor and returns its entry
// step. Starting over an active cursor fails without touching it.
func (e *Engine) Start(cursor Cursor, wizardId string) (StartResult, error) {
	if cursor.IsActive {
		return StartResult{}, ErrWizardActive
	}
	w, ok := e.table.Wizards[wizardId]
	if !ok {
		return StartResult{}, ErrUnknownWizard
	}
	entry, ok := w.Steps[w.EntryStep]
	if !ok {
		return StartResult{}, ErrUnknownWizard
	}
	return StartResult{
		Cursor: Cursor{
			IsActive:    true,
			WizardId:    wizardId,
			CurrentStep: w.EntryStep,
			StepHistory: []string{},
		},
		Intro: w.Description,
		Step:  entry,
	}, nil
}

// Advance resolves one user selection against the cursor's current step.
// On ErrNoMatchingOption the cursor is returned unchanged so the caller can
// fall through to the other resolution rules. The wizard ends when the step
// is terminal, the option has no outgoing edge, or the edge points at a
// step that does not exist.
func (e *Engine) Advance(cursor Cursor, selection string) (AdvanceResult, error) {
	if !cursor.IsActive {
		return AdvanceResult{}, ErrNotActive
	}
	w, ok := e.table.Wizards[cursor.WizardId]
	if !ok {
		return AdvanceResult{}, ErrUnknownWizard
	}
	step, ok := w.Steps[cursor.CurrentStep]
	if !ok {
		return AdvanceResult{}, ErrUnknownWizard
	}

	response, ok := step.Response[selection]
	if !ok {
		return AdvanceResult{Cursor: cursor}, ErrNoMatchingOption
	}

	result := AdvanceResult{
		Response: response,
		Actions:  step.Actions[selection],
	}

	nextId, hasNext := step.Next[selection]
	if !hasNext || step.Terminal {
		result.Cursor = Cursor{}
		return result, nil
	}
	next, ok := w.Steps[nextId]
	if !ok {
		result.Cursor = Cursor{}
		return result, nil
	}

	history := make([]string, 0, len(cursor.StepHistory)+1)
	history = append(history, cursor.StepHistory...)
	history = append(history, cursor.CurrentStep)
	result.Cursor = Cursor{
		IsActive:    true,
		WizardId:    cursor.WizardId,
		CurrentStep: nextId,
		StepHistory: history,
	}
	result.Next = &next
	return result, nil
}

// CurrentStep returns the step the cursor points at, for re-rendering an
// interrupted wizard.
func (e *Engine) CurrentStep(cursor Cursor) (Step, bool) {
	if !cursor.IsActive {
		return Step{}, false
	}
	w, ok := e.table.Wizards[cursor.WizardId]
	if !ok {
		return Step{}, false
	}
	step, ok := w.Steps[cursor.CurrentStep]
	return step, ok
}
