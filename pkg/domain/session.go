package domain

import "time"

// ViewSession is the interaction state of one viewer.
// At most one region is hovered and at most one is selected.
type ViewSession struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	Hovered   string    `json:"hovered,omitempty"`
	Selected  string    `json:"selected,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewViewSession creates a session in the default state.
func NewViewSession(id string) *ViewSession {
	return &ViewSession{
		ID:        id,
		State:     DefaultState,
		UpdatedAt: time.Now().UTC(),
	}
}
