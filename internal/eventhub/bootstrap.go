package eventhub

import (
	"context"
	"errors"

	"github.com/hay-kot/eventhub/internal/core/session"
)

// Bootstrap reconciles the persisted token with the backend. It runs at most
// once per Service; later calls return immediately.
//
// With no persisted token nothing is sent. Otherwise the token is checked
// with who-am-i: success establishes the session, any failure clears it.
// Failures are never reported to the user.
func (s *Service) Bootstrap(ctx context.Context) {
	s.bootOnce.Do(func() {
		defer close(s.ready)
		s.bootstrap(ctx)
	})
}

// Ready is closed once Bootstrap has finished.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Bootstrapped reports whether Bootstrap has finished.
func (s *Service) Bootstrapped() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

func (s *Service) bootstrap(ctx context.Context) {
	token, err := s.sessions.Restore(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			s.log.Debug().Err(err).Msg("read persisted token")
		}
		return
	}

	user, err := s.backend.Me(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Msg("persisted token rejected, clearing session")
		if err := s.sessions.Clear(ctx); err != nil {
			s.log.Debug().Err(err).Msg("clear session")
		}
		return
	}

	if err := s.sessions.Establish(ctx, user, token); err != nil {
		s.log.Debug().Err(err).Msg("persist restored token")
	}
	s.log.Debug().Int("user_id", user.ID).Msg("session restored")
}
