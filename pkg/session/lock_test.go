package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// nopStore accepts everything and stores nothing.
type nopStore struct{}

func (nopStore) Save(ctx context.Context, s *domain.ViewSession) error { return nil }
func (nopStore) Load(ctx context.Context, sessionID string) (*domain.ViewSession, error) {
	return domain.NewViewSession(sessionID), nil
}
func (nopStore) Delete(ctx context.Context, sessionID string) error { return nil }
func (nopStore) List(ctx context.Context) ([]string, error)         { return nil, nil }

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(nopStore{})
	ctx := context.Background()
	count := 10000

	for i := 0; i < count; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, domain.NewViewSession(sid))
		_, _ = mgr.Apply(ctx, sid, ActionHover, "pons")
		_ = mgr.Delete(ctx, sid)
	}

	if lockCount := len(mgr.locks); lockCount != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Delete", lockCount)
	}
}
