package ports

import (
	"context"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// SessionStore persists the interaction state of viewers.
type SessionStore interface {
	// Save persists the session under its ID.
	Save(ctx context.Context, session *domain.ViewSession) error

	// Load retrieves a session.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.ViewSession, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of live sessions.
	List(ctx context.Context) ([]string, error)
}
