package session

import (
	"errors"
	"fmt"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/interaction"
)

// ErrUnknownAction is returned for an action name outside the Action constants.
var ErrUnknownAction = errors.New("unknown action")

// Action is something a viewer does.
type Action string

const (
	ActionState    Action = "state"
	ActionHover    Action = "hover"
	ActionUnhover  Action = "unhover"
	ActionSelect   Action = "select"
	ActionDeselect Action = "deselect"
)

// Actions returns every action.
func Actions() []Action {
	return []Action{ActionState, ActionHover, ActionUnhover, ActionSelect, ActionDeselect}
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// TakesRegion reports whether the action's value is a region id.
func (a Action) TakesRegion() bool {
	return a == ActionHover || a == ActionSelect
}

// Apply mutates s in place. State actions parse value as a state; hover and select take a
// region id; the other actions ignore value.
func Apply(s *domain.ViewSession, action Action, value string) error {
	tr := interaction.Restore(s.Hovered, s.Selected)
	switch action {
	case ActionState:
		st, err := domain.ParseState(value)
		if err != nil {
			return err
		}
		s.State = st
	case ActionHover:
		if value == "" {
			return fmt.Errorf("%w: empty region id", domain.ErrRegionNotFound)
		}
		tr.PointerOver(value)
	case ActionUnhover:
		tr.PointerOut()
	case ActionSelect:
		if value == "" {
			return fmt.Errorf("%w: empty region id", domain.ErrRegionNotFound)
		}
		tr.Click(value)
	case ActionDeselect:
		tr.Deselect()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	s.Hovered = tr.Hovered()
	s.Selected = tr.Selected()
	return nil
}
