package eventhub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/store/jsonfile"
)

// fakeBackend is a minimal in-memory EventHub server.
type fakeBackend struct {
	mu         sync.Mutex
	registered int
	authHeader []string
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	reply := func(w http.ResponseWriter, status int, data any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": status < 300, "data": data})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{
			"user":  map[string]any{"id": 1, "name": "A", "role": "member"},
			"token": "T1",
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer T1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"success":false,"message":"Token has expired"}`)
			return
		}
		reply(w, http.StatusOK, map[string]any{"id": 1, "name": "A", "role": "member"})
	})
	mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		count := b.registered
		b.authHeader = append(b.authHeader, r.Header.Get("Authorization"))
		b.mu.Unlock()

		reply(w, http.StatusOK, map[string]any{
			"events": []map[string]any{{"id": 5, "title": "Fair", "registered_count": count}},
		})
	})
	mux.HandleFunc("POST /events/5/rsvp", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "going", body.Status)

		b.mu.Lock()
		b.registered++
		b.mu.Unlock()
		reply(w, http.StatusOK, nil)
	})
	return mux
}

func newLiveService(t *testing.T, srv *httptest.Server, credentials string) (*Service, *session.KVTokenStore) {
	t.Helper()

	tokens := session.NewKVTokenStore(jsonfile.NewKVStore(credentials))
	sessions := session.NewStore(tokens)
	client := api.New(srv.URL, api.WithTokenSource(sessions.Token))

	return New(client, sessions, nil, zerolog.New(io.Discard)), tokens
}

func TestLive_LoginRSVPAndRestart(t *testing.T) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	credentials := filepath.Join(t.TempDir(), "credentials.json")
	ctx := context.Background()

	svc, _ := newLiveService(t, srv, credentials)
	svc.Bootstrap(ctx)
	require.False(t, svc.Session().Authenticated())

	require.True(t, svc.Login(ctx, api.Credentials{Email: "a@b.com", Password: "x"}).Success)
	require.True(t, svc.FetchEvents(ctx, nil).Success)
	require.Equal(t, 0, svc.Events()[0].RegisteredCount)

	require.True(t, svc.RSVPEvent(ctx, 5, "going").Success)
	assert.Equal(t, 1, svc.Events()[0].RegisteredCount)

	// a fresh process restores the session from disk
	restarted, _ := newLiveService(t, srv, credentials)
	restarted.Bootstrap(ctx)

	current := restarted.Session()
	require.True(t, current.Authenticated())
	assert.Equal(t, "A", current.User.Name)
	assert.Equal(t, session.RoleMember, current.User.Role)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	for _, h := range backend.authHeader {
		assert.Equal(t, "Bearer T1", h)
	}
}

func TestLive_ExpiredTokenIsDropped(t *testing.T) {
	srv := httptest.NewServer((&fakeBackend{}).handler(t))
	defer srv.Close()

	credentials := filepath.Join(t.TempDir(), "credentials.json")
	svc, tokens := newLiveService(t, srv, credentials)
	require.NoError(t, tokens.Save(context.Background(), "OLD"))

	svc.Bootstrap(context.Background())

	assert.False(t, svc.Session().Authenticated())
	_, err := tokens.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoToken)
}
