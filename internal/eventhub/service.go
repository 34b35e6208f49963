// Package eventhub owns the client-side state of an EventHub session: who is
// logged in and which events and clubs are known locally. All mutation of
// that state goes through the Service's operations.
package eventhub

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/core/session"
)

// Backend is the REST contract the Service drives.
type Backend interface {
	Me(ctx context.Context, token string) (session.User, error)
	Login(ctx context.Context, creds api.Credentials) (api.AuthPayload, error)
	Register(ctx context.Context, reg api.Registration) (api.AuthPayload, error)
	ListEvents(ctx context.Context, params catalog.Params) ([]catalog.Event, error)
	CreateEvent(ctx context.Context, in catalog.EventInput) (catalog.Event, error)
	RSVPEvent(ctx context.Context, eventID int, status catalog.RSVPStatus) error
	ListClubs(ctx context.Context, params catalog.Params) ([]catalog.Club, error)
	CreateClub(ctx context.Context, in catalog.ClubInput) (catalog.Club, error)
	JoinClub(ctx context.Context, clubID int) error
}

// Notifier receives the user-facing outcome of operations.
type Notifier interface {
	NotifySuccess(msg string)
	NotifyError(msg string)
	NotifyInfo(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) NotifySuccess(string) {}
func (NopNotifier) NotifyError(string)   {}
func (NopNotifier) NotifyInfo(string)    {}

// Result is what every operation returns. Failures are reported here
// rather than as Go errors.
type Result struct {
	Success bool
	Error   string
}

// DataResult is a Result that also carries the record the backend returned.
type DataResult[T any] struct {
	Result
	Data T
}

func ok() Result               { return Result{Success: true} }
func failed(msg string) Result { return Result{Error: msg} }

// Service is the action façade over the session and the collection caches.
type Service struct {
	backend  Backend
	sessions *session.Store
	events   *catalog.Cache[catalog.Event]
	clubs    *catalog.Cache[catalog.Club]
	status   *statusBoard
	notify   Notifier
	log      zerolog.Logger

	bootOnce sync.Once
	ready    chan struct{}
}

// New creates a new Service. The session store must be the same one the
// backend reads its bearer token from.
func New(backend Backend, sessions *session.Store, notify Notifier, log zerolog.Logger) *Service {
	if notify == nil {
		notify = NopNotifier{}
	}

	return &Service{
		backend:  backend,
		sessions: sessions,
		events:   catalog.NewCache[catalog.Event](),
		clubs:    catalog.NewCache[catalog.Club](),
		status:   newStatusBoard(),
		notify:   notify,
		log:      log,
		ready:    make(chan struct{}),
	}
}

// Session returns a snapshot of the current session.
func (s *Service) Session() session.Session {
	return s.sessions.Current()
}

// Events returns a snapshot of the event cache.
func (s *Service) Events() []catalog.Event {
	return s.events.Items()
}

// Clubs returns a snapshot of the club cache.
func (s *Service) Clubs() []catalog.Club {
	return s.clubs.Items()
}

// Event looks up a cached event by ID.
func (s *Service) Event(id int) (catalog.Event, bool) {
	return s.events.Find(id)
}

// Club looks up a cached club by ID.
func (s *Service) Club(id int) (catalog.Club, bool) {
	return s.clubs.Find(id)
}

// Status returns the pending/error state for one kind of operation.
func (s *Service) Status(kind Kind) Status {
	return s.status.get(kind)
}
