package eventhub

import (
	"context"
	"fmt"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// FetchEvents replaces the event cache with the backend's list. Failures
// update the events status but are not notified.
func (s *Service) FetchEvents(ctx context.Context, params catalog.Params) Result {
	token := s.status.start(KindEvents)
	seq := s.events.Begin()

	events, err := s.backend.ListEvents(ctx, params)
	if err != nil {
		const msg = "Failed to fetch events"
		s.log.Warn().Err(err).Msg("fetch events")
		s.status.fail(KindEvents, token, msg)
		return failed(msg)
	}

	if !s.events.Replace(seq, events) {
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale events response")
	}

	s.status.succeed(KindEvents, token)
	return ok()
}

// CreateEvent posts a new event and appends the stored record to the cache.
func (s *Service) CreateEvent(ctx context.Context, in catalog.EventInput) DataResult[catalog.Event] {
	event, err := s.backend.CreateEvent(ctx, in)
	if err != nil {
		msg := api.MessageOr(err, "Failed to create event")
		s.log.Warn().Err(err).Msg("create event")
		s.notify.NotifyError(msg)
		return DataResult[catalog.Event]{Result: failed(msg)}
	}

	s.events.Append(event)
	s.notify.NotifySuccess("Event created successfully!")
	return DataResult[catalog.Event]{Result: ok(), Data: event}
}

// RSVPEvent records the user's attendance and then refreshes the whole
// event list so server-computed counts are current. The cached record is
// never patched locally.
func (s *Service) RSVPEvent(ctx context.Context, eventID int, status catalog.RSVPStatus) Result {
	if err := s.backend.RSVPEvent(ctx, eventID, status); err != nil {
		msg := api.MessageOr(err, "RSVP failed")
		s.log.Warn().Err(err).Int("event_id", eventID).Msg("rsvp")
		s.notify.NotifyError(msg)
		return failed(msg)
	}

	s.notify.NotifySuccess(fmt.Sprintf("RSVP updated to %s!", status))
	s.FetchEvents(ctx, nil)
	return ok()
}

// ApplyEventUpdate replaces a cached event in place. It reports whether the
// event was cached.
func (s *Service) ApplyEventUpdate(event catalog.Event) bool {
	return s.events.Update(event)
}
