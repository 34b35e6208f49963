package eventhub

import "sync"

// Kind groups operations that share a pending/error status.
type Kind string

const (
	KindAuth   Kind = "auth"
	KindEvents Kind = "events"
	KindClubs  Kind = "clubs"
)

// Status is the pending/error state of the most recent operation of a Kind.
type Status struct {
	Loading bool
	Err     string
}

// statusBoard tracks one Status per Kind. Every request takes a token from
// start; only the holder of the newest token of its kind may complete it, so
// a slow earlier request cannot overwrite the outcome of a later one.
type statusBoard struct {
	mu     sync.RWMutex
	kinds  map[Kind]Status
	latest map[Kind]uint64
	next   uint64
}

func newStatusBoard() *statusBoard {
	return &statusBoard{
		kinds:  make(map[Kind]Status),
		latest: make(map[Kind]uint64),
	}
}

func (b *statusBoard) get(kind Kind) Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.kinds[kind]
}

// start marks a new request of kind as pending, drops its previous error and
// returns the token that completes it.
func (b *statusBoard) start(kind Kind) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.latest[kind] = b.next
	b.kinds[kind] = Status{Loading: true}
	return b.next
}

func (b *statusBoard) succeed(kind Kind, token uint64) {
	b.finish(kind, token, Status{})
}

func (b *statusBoard) fail(kind Kind, token uint64, msg string) {
	b.finish(kind, token, Status{Err: msg})
}

func (b *statusBoard) finish(kind Kind, token uint64, st Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.latest[kind] != token {
		return
	}
	b.kinds[kind] = st
}

// reset clears every status. Requests still in flight can no longer
// complete.
func (b *statusBoard) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.kinds = make(map[Kind]Status)
	b.latest = make(map[Kind]uint64)
}
