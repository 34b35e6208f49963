package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hay-kot/eventhub/internal/core/kv"
)

// TokenKey is the fixed key the credential is persisted under.
const TokenKey = "token"

// Sentinel errors for session operations.
var (
	ErrNoToken    = errors.New("no persisted token")
	ErrEmptyToken = errors.New("token cannot be empty")
)

// TokenStore persists the raw credential across process restarts.
type TokenStore interface {
	// Load returns the persisted token. Returns ErrNoToken if none exists.
	Load(ctx context.Context) (string, error)
	// Save persists the token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Remove deletes the persisted token. Removing a missing token is not an error.
	Remove(ctx context.Context) error
}

// KVTokenStore implements TokenStore on top of a kv.Store.
type KVTokenStore struct {
	store kv.Store
}

// NewKVTokenStore creates a TokenStore that keeps the token under TokenKey.
func NewKVTokenStore(store kv.Store) *KVTokenStore {
	return &KVTokenStore{store: store}
}

func (t *KVTokenStore) Load(ctx context.Context) (string, error) {
	entry, err := t.store.Get(ctx, TokenKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("load token: %w", err)
	}

	if entry.Value == "" {
		return "", ErrNoToken
	}

	return entry.Value, nil
}

func (t *KVTokenStore) Save(ctx context.Context, token string) error {
	if err := t.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (t *KVTokenStore) Remove(ctx context.Context) error {
	err := t.store.Delete(ctx, TokenKey)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Store holds the process-wide session. Readers always observe either the
// state before or after a mutation, never a mix of the two.
type Store struct {
	mu      sync.RWMutex
	current Session
	tokens  TokenStore
}

// NewStore creates an empty session store backed by the given token store.
func NewStore(tokens TokenStore) *Store {
	return &Store{tokens: tokens}
}

// Current returns a copy of the current session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Session{Token: s.current.Token}
	if s.current.User != nil {
		u := *s.current.User
		out.User = &u
	}
	return out
}

// Token returns the current session token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Restore reads the persisted token without touching the in-memory session.
func (s *Store) Restore(ctx context.Context) (string, error) {
	return s.tokens.Load(ctx)
}

// Establish sets the user and token together and persists the token.
//
// The in-memory session is updated even when persisting fails; the returned
// error only reports that the session will not survive a restart.
func (s *Store) Establish(ctx context.Context, user User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{User: &user, Token: token}

	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}
	return nil
}

// Clear unsets the session and removes the persisted token.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}

	return s.tokens.Remove(ctx)
}
