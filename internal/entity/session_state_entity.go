package entity

import (
	"github.com/google/uuid"
)

const (
	DetailLevelBasic    = "basic"
	DetailLevelDetailed = "detailed"
)

// Preferences is the persisted slice of the session state.
type Preferences struct {
	DetailLevel        string   `json:"detail_level"`
	FavoriteServices   []string `json:"favorite_services"`
	CompletedTutorials []string `json:"completed_tutorials"`
	UserName           string   `json:"user_name,omitempty"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		DetailLevel:        DetailLevelBasic,
		FavoriteServices:   []string{},
		CompletedTutorials: []string{},
	}
}

// AddFavoriteService appends a service id, deduplicated by insertion order.
func (p *Preferences) AddFavoriteService(serviceId string) bool {
	for _, s := range p.FavoriteServices {
		if s == serviceId {
			return false
		}
	}
	p.FavoriteServices = append(p.FavoriteServices, serviceId)
	return true
}

func (p Preferences) HasFavoriteService(serviceId string) bool {
	for _, s := range p.FavoriteServices {
		if s == serviceId {
			return true
		}
	}
	return false
}

// WizardCursor tracks the active guided procedure, if any.
// Persisted only while active.
type WizardCursor struct {
	IsActive    bool     `json:"is_active"`
	WizardId    string   `json:"wizard_id"`
	CurrentStep string   `json:"current_step"`
	StepHistory []string `json:"step_history"`
}

// SessionState is the whole mutable state of one assistant session.
// Owned and mutated exclusively by the assistant service.
type SessionState struct {
	Id            uuid.UUID
	Messages      []ChatMessage
	IsOpen        bool
	IsSuspended   bool
	CurrentRoute  string
	Preferences   Preferences
	Wizard        WizardCursor
	PendingAccess string
}

func NewSessionState(id uuid.UUID) *SessionState {
	return &SessionState{
		Id:          id,
		Messages:    []ChatMessage{},
		Preferences: DefaultPreferences(),
	}
}
