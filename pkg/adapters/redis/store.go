package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aretw0/wayfinder/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "wayfinder:session:"

// noExpiry is the index score of sessions without a TTL (2100-01-01).
const noExpiry = 4102444800

// Hash fields of a stored session.
const (
	fieldID        = "id"
	fieldState     = "state"
	fieldHovered   = "hovered"
	fieldSelected  = "selected"
	fieldUpdatedAt = "updated_at"
)

// Store implements ports.SessionStore using Redis.
// Each session is a hash; a sorted set scored by expiry indexes the live ones for List.
type Store struct {
	client backend.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for sessions. Every Save renews it.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for sessions.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a Redis store over a single-node, sentinel or cluster client.
func NewFromClient(client backend.UniversalClient, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Client returns the underlying client, shared with the Locker.
func (s *Store) Client() backend.UniversalClient {
	return s.client
}

func (s *Store) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save writes every field of the session in one MULTI/EXEC, renews its TTL and refreshes
// its index entry. Cleared hover and selection are stored as empty fields.
func (s *Store) Save(ctx context.Context, session *domain.ViewSession) error {
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = noExpiry
	}

	key := s.key(session.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldID, session.ID,
			fieldState, string(session.State),
			fieldHovered, session.Hovered,
			fieldSelected, session.Selected,
			fieldUpdatedAt, session.UpdatedAt.UTC().Format(time.RFC3339Nano),
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		} else {
			pipe.Persist(ctx, key)
		}
		pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: session.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session %s to redis: %w", session.ID, err)
	}
	return nil
}

// Load retrieves a session. A missing hash also drops its stale index entry.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.ViewSession, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s from redis: %w", sessionID, err)
	}
	if len(fields) == 0 {
		if err := s.client.ZRem(ctx, s.indexKey(), sessionID).Err(); err != nil && !errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("failed to drop stale index entry: %w", err)
		}
		return nil, domain.ErrSessionNotFound
	}
	return decodeSession(fields)
}

func decodeSession(fields map[string]string) (*domain.ViewSession, error) {
	id, ok := fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("stored session has no %q field", fieldID)
	}
	state := domain.State(fields[fieldState])
	if !state.Valid() {
		return nil, fmt.Errorf("stored session %s: %w: %q", id, domain.ErrUnknownState, state)
	}
	updated, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("stored session %s: bad %s: %w", id, fieldUpdatedAt, err)
	}
	return &domain.ViewSession{
		ID:        id,
		State:     state,
		Hovered:   fields[fieldHovered],
		Selected:  fields[fieldSelected],
		UpdatedAt: updated,
	}, nil
}

// Delete removes the session and its index entry.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, s.key(sessionID))
		pipe.ZRem(ctx, s.indexKey(), sessionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete session %s from redis: %w", sessionID, err)
	}
	return nil
}

// List prunes index entries whose expiry has passed and returns the remaining IDs sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := fmt.Sprintf("%d", time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", now).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired sessions: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	slices.Sort(ids)
	return ids, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
