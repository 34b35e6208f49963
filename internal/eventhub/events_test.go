package eventhub

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/catalog"
)

func TestFetchEvents_ReplacesCache(t *testing.T) {
	f := newFixture(t)
	f.svc.events.Append(catalog.Event{ID: 1, Title: "Old"})

	f.backend.listEvents = func(p catalog.Params) ([]catalog.Event, error) {
		assert.Equal(t, catalog.Params{}, p)
		return []catalog.Event{{ID: 5, Title: "Fair"}}, nil
	}

	res := f.svc.FetchEvents(context.Background(), catalog.Params{})

	assert.True(t, res.Success)
	assert.Equal(t, []catalog.Event{{ID: 5, Title: "Fair"}}, f.svc.Events())
	assert.Equal(t, Status{}, f.svc.Status(KindEvents))
}

func TestFetchEvents_ForwardsParams(t *testing.T) {
	f := newFixture(t)
	f.backend.listEvents = func(p catalog.Params) ([]catalog.Event, error) {
		assert.Equal(t, catalog.Params{"search": "fair"}, p)
		return nil, nil
	}

	f.svc.FetchEvents(context.Background(), catalog.Params{"search": "fair"})
}

func TestFetchEvents_FailureSetsStatusWithoutNotifying(t *testing.T) {
	f := newFixture(t)
	f.svc.events.Append(catalog.Event{ID: 1, Title: "Kept"})
	f.backend.listEvents = func(catalog.Params) ([]catalog.Event, error) {
		return nil, backendErr(500, "db down")
	}

	res := f.svc.FetchEvents(context.Background(), nil)

	assert.Equal(t, Result{Error: "Failed to fetch events"}, res)
	assert.Equal(t, Status{Err: "Failed to fetch events"}, f.svc.Status(KindEvents))
	assert.Equal(t, []catalog.Event{{ID: 1, Title: "Kept"}}, f.svc.Events())
	assert.Empty(t, f.notes.Notes())
}

func TestFetchEvents_StaleResponseDiscarded(t *testing.T) {
	f := newFixture(t)

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	var n int
	var mu sync.Mutex

	f.backend.listEvents = func(catalog.Params) ([]catalog.Event, error) {
		mu.Lock()
		n++
		call := n
		mu.Unlock()

		if call == 1 {
			close(slowStarted)
			<-releaseSlow
			return []catalog.Event{{ID: 1, Title: "Stale"}}, nil
		}
		return []catalog.Event{{ID: 2, Title: "Fresh"}}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.svc.FetchEvents(context.Background(), nil)
	}()

	<-slowStarted
	f.svc.FetchEvents(context.Background(), nil)
	close(releaseSlow)
	<-done

	assert.Equal(t, []catalog.Event{{ID: 2, Title: "Fresh"}}, f.svc.Events())
}

func TestFetchEvents_StaleFailureKeepsStatus(t *testing.T) {
	f := newFixture(t)

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	var n int
	var mu sync.Mutex

	f.backend.listEvents = func(catalog.Params) ([]catalog.Event, error) {
		mu.Lock()
		n++
		call := n
		mu.Unlock()

		if call == 1 {
			close(slowStarted)
			<-releaseSlow
			return nil, backendErr(http.StatusInternalServerError, "boom")
		}
		return []catalog.Event{{ID: 2, Title: "Fresh"}}, nil
	}

	done := make(chan Result, 1)
	go func() {
		done <- f.svc.FetchEvents(context.Background(), nil)
	}()

	<-slowStarted
	require.True(t, f.svc.FetchEvents(context.Background(), nil).Success)
	close(releaseSlow)

	assert.False(t, (<-done).Success)
	assert.Equal(t, Status{}, f.svc.Status(KindEvents), "older failure must not mark a fresh cache as failed")
	assert.Equal(t, []catalog.Event{{ID: 2, Title: "Fresh"}}, f.svc.Events())
}

func TestFetchEvents_EarlierSuccessKeepsLoading(t *testing.T) {
	f := newFixture(t)

	started := []chan struct{}{make(chan struct{}), make(chan struct{})}
	release := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var n int
	var mu sync.Mutex

	f.backend.listEvents = func(catalog.Params) ([]catalog.Event, error) {
		mu.Lock()
		call := n
		n++
		mu.Unlock()

		close(started[call])
		<-release[call]
		return []catalog.Event{{ID: call + 1}}, nil
	}

	fetch := func() chan struct{} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			f.svc.FetchEvents(context.Background(), nil)
		}()
		return done
	}

	firstDone := fetch()
	<-started[0]
	secondDone := fetch()
	<-started[1]

	close(release[0])
	<-firstDone
	assert.True(t, f.svc.Status(KindEvents).Loading, "the newer request is still pending")

	close(release[1])
	<-secondDone
	assert.Equal(t, Status{}, f.svc.Status(KindEvents))
	assert.Equal(t, []catalog.Event{{ID: 2}}, f.svc.Events())
}

func TestCreateEvent_AppendsServerRecord(t *testing.T) {
	f := newFixture(t)
	f.svc.events.Append(catalog.Event{ID: 1, Title: "Existing"})

	input := catalog.EventInput{Title: "Fair", Date: "2024-09-01", StartTime: "10:00", EndTime: "12:00", Location: "Quad"}
	stored := catalog.Event{ID: 42, Title: "Fair", Date: "2024-09-01", Location: "Quad", Capacity: 50, CreatorName: "A"}

	f.backend.createEvent = func(in catalog.EventInput) (catalog.Event, error) {
		assert.Equal(t, input, in)
		return stored, nil
	}

	res := f.svc.CreateEvent(context.Background(), input)

	assert.True(t, res.Success)
	assert.Equal(t, stored, res.Data)

	events := f.svc.Events()
	require.Len(t, events, 2)
	assert.Equal(t, stored, events[1])
	assert.Equal(t, []note{{"success", "Event created successfully!"}}, f.notes.Notes())
}

func TestCreateEvent_FailureLeavesCache(t *testing.T) {
	f := newFixture(t)
	before := []catalog.Event{{ID: 1, Title: "Existing"}}
	f.svc.events.Replace(f.svc.events.Begin(), before)

	f.backend.createEvent = func(catalog.EventInput) (catalog.Event, error) {
		return catalog.Event{}, &api.Error{Err: errors.New("connection reset")}
	}

	res := f.svc.CreateEvent(context.Background(), catalog.EventInput{Title: "Fair"})

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to create event", res.Error)
	assert.Equal(t, before, f.svc.Events())
	assert.Equal(t, []note{{"error", "Failed to create event"}}, f.notes.Notes())
}

func TestRSVPEvent_RefreshesInsteadOfPatching(t *testing.T) {
	f := newFixture(t)
	f.svc.events.Replace(f.svc.events.Begin(), []catalog.Event{{ID: 7, Title: "Fair", RegisteredCount: 3}})

	f.backend.rsvp = func(id int, status catalog.RSVPStatus) error {
		assert.Equal(t, 7, id)
		assert.Equal(t, catalog.RSVPStatus("maybe-later"), status, "status is passed through unvalidated")

		// the cache must be untouched at the time the post happens
		assert.Equal(t, 3, f.svc.Events()[0].RegisteredCount)
		return nil
	}
	f.backend.listEvents = func(p catalog.Params) ([]catalog.Event, error) {
		assert.Empty(t, p)
		return []catalog.Event{{ID: 7, Title: "Fair", RegisteredCount: 4}}, nil
	}

	res := f.svc.RSVPEvent(context.Background(), 7, "maybe-later")

	assert.True(t, res.Success)
	assert.Equal(t, []string{"rsvp", "listEvents"}, f.backend.Calls())
	assert.Equal(t, []catalog.Event{{ID: 7, Title: "Fair", RegisteredCount: 4}}, f.svc.Events())
	assert.Equal(t, []note{{"success", "RSVP updated to maybe-later!"}}, f.notes.Notes())
}

func TestRSVPEvent_FailureLeavesCache(t *testing.T) {
	f := newFixture(t)
	before := []catalog.Event{{ID: 7, Title: "Fair"}}
	f.svc.events.Replace(f.svc.events.Begin(), before)
	f.backend.rsvp = func(int, catalog.RSVPStatus) error { return backendErr(400, "Event is full") }

	res := f.svc.RSVPEvent(context.Background(), 7, catalog.RSVPGoing)

	assert.Equal(t, Result{Error: "Event is full"}, res)
	assert.Equal(t, []string{"rsvp"}, f.backend.Calls())
	assert.Equal(t, before, f.svc.Events())
}

func TestApplyEventUpdate(t *testing.T) {
	f := newFixture(t)
	f.svc.events.Replace(f.svc.events.Begin(), []catalog.Event{{ID: 1, Title: "A"}})

	assert.True(t, f.svc.ApplyEventUpdate(catalog.Event{ID: 1, Title: "A2"}))
	assert.False(t, f.svc.ApplyEventUpdate(catalog.Event{ID: 2, Title: "B"}))

	ev, ok := f.svc.Event(1)
	require.True(t, ok)
	assert.Equal(t, "A2", ev.Title)
}
