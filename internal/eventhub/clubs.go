package eventhub

import (
	"context"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// FetchClubs replaces the club cache with the backend's list. Failures
// update the clubs status but are not notified.
func (s *Service) FetchClubs(ctx context.Context, params catalog.Params) Result {
	token := s.status.start(KindClubs)
	seq := s.clubs.Begin()

	clubs, err := s.backend.ListClubs(ctx, params)
	if err != nil {
		const msg = "Failed to fetch clubs"
		s.log.Warn().Err(err).Msg("fetch clubs")
		s.status.fail(KindClubs, token, msg)
		return failed(msg)
	}

	if !s.clubs.Replace(seq, clubs) {
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale clubs response")
	}

	s.status.succeed(KindClubs, token)
	return ok()
}

// CreateClub posts a new club and appends the stored record to the cache.
func (s *Service) CreateClub(ctx context.Context, in catalog.ClubInput) DataResult[catalog.Club] {
	club, err := s.backend.CreateClub(ctx, in)
	if err != nil {
		msg := api.MessageOr(err, "Failed to create club")
		s.log.Warn().Err(err).Msg("create club")
		s.notify.NotifyError(msg)
		return DataResult[catalog.Club]{Result: failed(msg)}
	}

	s.clubs.Append(club)
	s.notify.NotifySuccess("Club created successfully!")
	return DataResult[catalog.Club]{Result: ok(), Data: club}
}

// JoinClub adds the user to a club and then refreshes the whole club list.
func (s *Service) JoinClub(ctx context.Context, clubID int) Result {
	if err := s.backend.JoinClub(ctx, clubID); err != nil {
		msg := api.MessageOr(err, "Failed to join club")
		s.log.Warn().Err(err).Int("club_id", clubID).Msg("join club")
		s.notify.NotifyError(msg)
		return failed(msg)
	}

	s.notify.NotifySuccess("Successfully joined club!")
	s.FetchClubs(ctx, nil)
	return ok()
}

// ApplyClubUpdate replaces a cached club in place. It reports whether the
// club was cached.
func (s *Service) ApplyClubUpdate(club catalog.Club) bool {
	return s.clubs.Update(club)
}
