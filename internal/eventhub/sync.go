package eventhub

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// Sync refreshes events and clubs concurrently. Both fetches always run to
// completion; the first failure is returned.
func (s *Service) Sync(ctx context.Context, events, clubs catalog.Params) error {
	var g errgroup.Group

	g.Go(func() error {
		if r := s.FetchEvents(ctx, events); !r.Success {
			return errors.New(r.Error)
		}
		return nil
	})
	g.Go(func() error {
		if r := s.FetchClubs(ctx, clubs); !r.Success {
			return errors.New(r.Error)
		}
		return nil
	})

	return g.Wait()
}
