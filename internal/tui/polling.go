package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/eventhub"
)

const toastDuration = 3 * time.Second

// bootstrapDoneMsg is sent when the persisted session has been checked.
type bootstrapDoneMsg struct{}

// syncDoneMsg is sent when a refresh of both collections finishes. Fetch
// errors are read back from the service status.
type syncDoneMsg struct{}

// actionDoneMsg is sent when a mutation finishes. Its outcome arrives as a
// toast.
type actionDoneMsg struct{}

// refreshTickMsg triggers a periodic refresh.
type refreshTickMsg struct{}

// toastExpiredMsg clears the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

func bootstrap(ctx context.Context, svc *eventhub.Service) tea.Cmd {
	return func() tea.Msg {
		svc.Bootstrap(ctx)
		return bootstrapDoneMsg{}
	}
}

func syncAll(ctx context.Context, svc *eventhub.Service) tea.Cmd {
	return func() tea.Msg {
		_ = svc.Sync(ctx, nil, nil)
		return syncDoneMsg{}
	}
}

func rsvpEvent(ctx context.Context, svc *eventhub.Service, id int, status catalog.RSVPStatus) tea.Cmd {
	return func() tea.Msg {
		svc.RSVPEvent(ctx, id, status)
		return actionDoneMsg{}
	}
}

func joinClub(ctx context.Context, svc *eventhub.Service, id int) tea.Cmd {
	return func() tea.Msg {
		svc.JoinClub(ctx, id)
		return actionDoneMsg{}
	}
}

// scheduleRefresh returns a command that schedules the next refresh.
func (m Model) scheduleRefresh() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil // Disabled
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func expireToast(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
