package eventhub

import (
	"context"
	"errors"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/session"
)

// Errors returned by Require.
var (
	ErrBootstrapPending = errors.New("session is still being restored")
	ErrNotAuthenticated = errors.New("not logged in, run 'eventhub login' first")
	ErrForbidden        = errors.New("your account does not have the required role")
)

// Login authenticates with the backend and establishes the session.
func (s *Service) Login(ctx context.Context, creds api.Credentials) Result {
	s.log.Debug().Str("email", creds.Email).Msg("login")

	return s.authenticate(ctx, "Login successful!", "Login failed", func() (api.AuthPayload, error) {
		return s.backend.Login(ctx, creds)
	})
}

// Register creates an account. A successful registration is also a login.
func (s *Service) Register(ctx context.Context, reg api.Registration) Result {
	s.log.Debug().Str("email", reg.Email).Msg("register")

	return s.authenticate(ctx, "Registration successful!", "Registration failed", func() (api.AuthPayload, error) {
		return s.backend.Register(ctx, reg)
	})
}

func (s *Service) authenticate(ctx context.Context, successMsg, fallback string, fn func() (api.AuthPayload, error)) Result {
	token := s.status.start(KindAuth)

	payload, err := fn()
	if err == nil && payload.Token == "" {
		err = errors.New("backend returned no token")
	}
	if err != nil {
		msg := api.MessageOr(err, fallback)
		s.log.Warn().Err(err).Msg("authentication failed")
		s.status.fail(KindAuth, token, msg)
		s.notify.NotifyError(msg)
		return failed(msg)
	}

	if err := s.sessions.Establish(ctx, payload.User, payload.Token); err != nil {
		s.log.Warn().Err(err).Msg("session will not survive restart")
	}

	s.status.succeed(KindAuth, token)
	s.notify.NotifySuccess(successMsg)
	return ok()
}

// Logout clears the session and both caches. No request is sent.
func (s *Service) Logout(ctx context.Context) Result {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("remove persisted token")
	}

	s.events.Reset()
	s.clubs.Reset()
	s.status.reset()

	s.notify.NotifyInfo("Logged out successfully")
	return ok()
}

// Require checks that bootstrap has finished and the current user holds
// role. An empty role only requires a login.
func (s *Service) Require(role session.Role) (session.User, error) {
	if !s.Bootstrapped() {
		return session.User{}, ErrBootstrapPending
	}

	current := s.sessions.Current()
	if !current.Authenticated() {
		return session.User{}, ErrNotAuthenticated
	}

	if !current.User.HasRole(role) {
		return *current.User, ErrForbidden
	}

	return *current.User, nil
}
