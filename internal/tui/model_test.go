package tui

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/eventhub"
	"github.com/hay-kot/eventhub/internal/store/jsonfile"
)

type harness struct {
	svc    *eventhub.Service
	toasts *Toasts
	posts  atomic.Int32
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{toasts: &Toasts{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"events":[{"id":5,"title":"Fair","capacity":10,"registered_count":3}]}}`)
	})
	mux.HandleFunc("GET /clubs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"clubs":[{"id":3,"name":"Chess","member_count":12}]}}`)
	})
	mux.HandleFunc("POST /", func(w http.ResponseWriter, _ *http.Request) {
		h.posts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	tokens := session.NewKVTokenStore(jsonfile.NewKVStore(filepath.Join(t.TempDir(), "credentials.json")))
	sessions := session.NewStore(tokens)
	client := api.New(srv.URL, api.WithTokenSource(sessions.Token))

	h.svc = eventhub.New(client, sessions, h.toasts, zerolog.Nop())
	return h
}

// loaded returns a model that has finished bootstrap and its first sync.
func (h *harness) loaded(t *testing.T) Model {
	t.Helper()

	ctx := context.Background()
	h.svc.Bootstrap(ctx)
	require.NoError(t, h.svc.Sync(ctx, nil, nil))

	m := New(ctx, h.svc, h.toasts, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, bootstrapDoneMsg{})
	m = update(t, m, syncDoneMsg{})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToasts_DrainOrder(t *testing.T) {
	var toasts Toasts
	toasts.NotifySuccess("one")
	toasts.NotifyError("two")
	toasts.NotifyInfo("three")

	assert.Equal(t, []Toast{
		{Level: LevelSuccess, Message: "one"},
		{Level: LevelError, Message: "two"},
		{Level: LevelInfo, Message: "three"},
	}, toasts.Drain())
	assert.Empty(t, toasts.Drain())
}

func TestModel_LoadsCaches(t *testing.T) {
	m := newHarness(t).loaded(t)

	assert.Equal(t, 0, m.pending)
	require.Len(t, m.events.Items(), 1)
	assert.Equal(t, "Fair", m.events.Items()[0].(EventItem).Event.Title)
	require.Len(t, m.clubs.Items(), 1)
	assert.Equal(t, "Chess", m.clubs.Items()[0].(ClubItem).Club.Name)

	assert.Contains(t, m.View(), "Fair")
	assert.Contains(t, m.View(), "not logged in")
}

func TestModel_TabSwitchesView(t *testing.T) {
	m := newHarness(t).loaded(t)
	require.Equal(t, ViewEvents, m.active)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewClubs, m.active)
	assert.Contains(t, m.View(), "Chess")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewEvents, m.active)
}

func TestModel_MutationsRequireLogin(t *testing.T) {
	h := newHarness(t)
	m := h.loaded(t)

	m = update(t, m, runeKey('g'))

	require.NotNil(t, m.toast)
	assert.Equal(t, LevelError, m.toast.Level)
	assert.Equal(t, eventhub.ErrNotAuthenticated.Error(), m.toast.Message)
	assert.Equal(t, 0, m.pending)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runeKey('j'))

	assert.Equal(t, LevelError, m.toast.Level)
	assert.Zero(t, h.posts.Load(), "nothing is sent without a session")
}

func TestModel_ActionDoneShowsToast(t *testing.T) {
	h := newHarness(t)
	m := h.loaded(t)
	m.pending = 1

	h.toasts.NotifySuccess("Successfully joined club!")
	m = update(t, m, actionDoneMsg{})

	require.NotNil(t, m.toast)
	assert.Equal(t, "Successfully joined club!", m.toast.Message)
	assert.Equal(t, 0, m.pending)

	stale := update(t, m, toastExpiredMsg{seq: m.toastSeq - 1})
	assert.NotNil(t, stale.toast)

	cleared := update(t, m, toastExpiredMsg{seq: m.toastSeq})
	assert.Nil(t, cleared.toast)
}

func TestModel_Quit(t *testing.T) {
	m := newHarness(t).loaded(t)

	next, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_DetailModal(t *testing.T) {
	m := newHarness(t).loaded(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "Event #5")
	assert.Contains(t, m.detail.markdown, "7/10")

	// q closes the modal instead of quitting
	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Nil(t, m.detail)
	assert.False(t, m.quitting)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "Club #3")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.detail)
}
