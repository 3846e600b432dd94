package events

import (
	"time"

	"github.com/google/uuid"
)

// Action is a UI side effect requested by the assistant: a navigation, an
// element highlight or a typing-state change. The websocket boundary
// delivers it to the frontend.
type Action struct {
	SessionId uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Route     string    `json:"route,omitempty"`
	Selector  string    `json:"selector,omitempty"`
	Active    bool      `json:"active,omitempty"`
	EmittedAt time.Time `json:"emitted_at"`
}

// Kind discriminates the action families.
type Kind string

const (
	KindNavigate  Kind = "navigate"
	KindHighlight Kind = "highlight"
	KindTyping    Kind = "typing"
)

// Typing builds the event that tells the frontend the assistant started or
// stopped composing a reply, so it can disable input during the window.
func Typing(sessionId uuid.UUID, active bool) Action {
	return Action{
		SessionId: sessionId,
		Name:      "typing",
		Kind:      KindTyping,
		Active:    active,
		EmittedAt: time.Now(),
	}
}

// Action templates keyed by the names used in the rule and wizard tables.
// Navigations carry a route; highlights carry the CSS selector the frontend
// scrolls to and pulses.
var registry = map[string]Action{
	"navigateToServices": {Kind: KindNavigate, Route: "/servizi"},
	"navigateToProfile":  {Kind: KindNavigate, Route: "/profilo"},
	"navigateToINPS":     {Kind: KindNavigate, Route: "/service/inps"},
	"navigateToHealth":   {Kind: KindNavigate, Route: "/service/sanita"},
	"navigateToTaxes":    {Kind: KindNavigate, Route: "/service/fisco"},
	"navigateToPoste":    {Kind: KindNavigate, Route: "/service/poste"},
	"navigateToBCC":      {Kind: KindNavigate, Route: "/service/bcc"},
	"navigateToINAIL":    {Kind: KindNavigate, Route: "/service/inail"},
	"navigateToGlossary": {Kind: KindNavigate, Route: "/glossario"},
	"navigateToGuide":    {Kind: KindNavigate, Route: "/guide"},

	// Operation deep links, indexed by position in the service catalog.
	"navigateToPensionApplication": {Kind: KindNavigate, Route: "/operation/inps/0"},
	"navigateToHealthBooking":      {Kind: KindNavigate, Route: "/operation/sanita/0"},
	"navigateToTaxDeclaration":     {Kind: KindNavigate, Route: "/operation/fisco/1"},
	"navigateToPosteid":            {Kind: KindNavigate, Route: "/operation/poste/1"},
	"navigateToINAILDenuncia":      {Kind: KindNavigate, Route: "/operation/inail/0"},
	"navigateToBCCTransparency":    {Kind: KindNavigate, Route: "/operation/bcc/0"},

	"highlightINPS":           {Kind: KindHighlight, Selector: `[data-service="inps"]`},
	"highlightPensionButton":  {Kind: KindHighlight, Selector: `[data-operation="domanda-pensione"]`},
	"highlightPosteid":        {Kind: KindHighlight, Selector: `[data-operation*="posteid"]`},
	"highlightBooking":        {Kind: KindHighlight, Selector: `[data-operation*="prenotazione"]`},
	"highlightTaxDeclaration": {Kind: KindHighlight, Selector: `[data-operation*="precompilata"]`},
}

// Resolve maps an action name from the rule or wizard tables to its event
// template. Unknown names return false; the dispatcher logs and skips them.
func Resolve(name string) (Action, bool) {
	a, ok := registry[name]
	if !ok {
		return Action{}, false
	}
	a.Name = name
	return a, true
}
