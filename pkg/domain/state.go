package domain

import (
	"fmt"
	"strings"
)

// State is the emotional/cognitive mode that selects which regions are emphasized.
type State string

const (
	StateFlow     State = "Flow"
	StateAnxious  State = "Anxious"
	StateSad      State = "Sad"
	StateShutdown State = "Shutdown"
)

// DefaultState is the state a fresh viewer starts in.
const DefaultState = StateFlow

// States returns every state in display order.
func States() []State {
	return []State{StateFlow, StateAnxious, StateSad, StateShutdown}
}

// ParseState matches s case-insensitively against the known states.
func ParseState(s string) (State, error) {
	for _, st := range States() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// Valid reports whether s is one of the four states.
func (s State) Valid() bool {
	switch s {
	case StateFlow, StateAnxious, StateSad, StateShutdown:
		return true
	}
	return false
}

func (s State) String() string {
	return string(s)
}
