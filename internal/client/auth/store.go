// Package auth owns the authenticated-session lifecycle on the client. The
// Store is the single writer of auth state: the HTTP layer and the navigation
// guard only read it or invoke its actions.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/annapetrenko/mealkeeper/internal/client/api"
	"github.com/annapetrenko/mealkeeper/internal/client/repositories/metadata"
	"github.com/annapetrenko/mealkeeper/internal/client/session"
	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/logging"
)

// genericLoginError is shown when the backend supplies no message of its own.
const genericLoginError = "Login failed"

// Result is the outcome of a login attempt. Login never propagates an error
// past the store boundary; failures come back here with a user-displayable
// message.
type Result struct {
	Success bool
	Error   string
}

// Store holds {user, token, isAuthenticated}. isAuthenticated is not implied
// by token presence: a token rehydrated from durable storage sits unverified
// until CheckToken confirms it, so the public logged-in predicate requires
// both.
//
// Actions may overlap (bootstrap and the first guard evaluation can both call
// CheckToken). Network calls run outside the lock and every action commits
// its terminal state in a single locked write, so overlapping calls cannot
// leave partial updates behind; the last write wins.
type Store struct {
	mu              sync.Mutex
	user            *api.UserProfile
	token           string
	isAuthenticated bool

	client  api.Client
	tokens  *session.TokenStore
	storage metadata.Repository
	logger  logging.Logger
}

func NewStore(client api.Client, tokens *session.TokenStore, storage metadata.Repository, logger logging.Logger) *Store {
	return &Store{
		client:  client,
		tokens:  tokens,
		storage: storage,
		logger:  logger.With("module", "auth_store"),
	}
}

// Login exchanges credentials for a session token. On success the token is
// stored in memory, in the session store, and in durable storage, and the
// user is considered authenticated. On failure state is left unauthenticated
// and the backend's message (or a generic fallback) is returned.
func (s *Store) Login(ctx context.Context, creds api.Credentials) Result {
	resp, err := s.client.CreateSession(ctx, creds)
	if err != nil {
		return Result{Success: false, Error: loginErrorMessage(err)}
	}

	if err := s.storage.Set(ctx, common.TokenStorageKey, []byte(resp.AccessToken)); err != nil {
		// The session itself is valid; it just won't survive a restart.
		s.logger.Warn(ctx, "failed to persist token", "error", err)
	}
	s.tokens.Set(resp.AccessToken)

	s.mu.Lock()
	s.token = resp.AccessToken
	s.isAuthenticated = true
	s.mu.Unlock()

	return Result{Success: true}
}

// Logout tears the session down everywhere: in-memory state, the session
// store, and durable storage. It always succeeds; cleanup failures are only
// logged.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.mu.Unlock()

	s.tokens.Clear()

	if err := s.storage.Delete(ctx, common.TokenStorageKey); err != nil {
		s.logger.Warn(ctx, "failed to remove stored token", "error", err)
	}
}

// CheckToken resolves an unverified durable token into a definite auth state.
// No durable token: normalizes to logged-out without any network call. A
// durable token that the backend rejects for any reason (401, transport,
// malformed response) is purged; this is the only mechanism that removes a
// stale token.
func (s *Store) CheckToken(ctx context.Context) bool {
	value, err := s.storage.Get(ctx, common.TokenStorageKey)
	if err != nil {
		s.logger.Warn(ctx, "failed to read stored token", "error", err)
	}
	if len(value) == 0 {
		s.Logout(ctx)
		return false
	}
	token := string(value)

	s.tokens.Set(token)

	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		s.Logout(ctx)
		return false
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.isAuthenticated = true
	s.mu.Unlock()

	return true
}

// InitializeAuth runs once at startup. If a durable token exists it is set on
// the session store eagerly, so the very first request already carries it,
// and then verified via CheckToken. Without a token this is a no-op.
func (s *Store) InitializeAuth(ctx context.Context) {
	value, err := s.storage.Get(ctx, common.TokenStorageKey)
	if err != nil {
		s.logger.Warn(ctx, "failed to read stored token", "error", err)
		return
	}
	if len(value) == 0 {
		return
	}

	s.tokens.Set(string(value))

	s.mu.Lock()
	s.token = string(value) // rehydrated, not yet verified
	s.mu.Unlock()

	s.CheckToken(ctx)
}

// IsLoggedIn reports whether the user is authenticated. Both the verified
// flag and a present token are required.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated && s.token != ""
}

// HasUnverifiedToken reports the ambiguous rehydrated state: a token is
// present but has not been confirmed yet. The navigation guard verifies only
// in this state, so confirmed sessions navigate without extra round-trips and
// a known-absent token skips verification entirely.
func (s *Store) HasUnverifiedToken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.isAuthenticated && s.token != ""
}

// User returns the verified profile, or nil before verification.
func (s *Store) User() *api.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current token, or the empty string.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// loginErrorMessage extracts a user-displayable message from a failed
// session-creation call.
func loginErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericLoginError
}
