package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/eventhub/internal/eventhub"
	"github.com/hay-kot/eventhub/internal/styles"
)

// ViewType identifies which collection is shown.
type ViewType int

const (
	ViewEvents ViewType = iota
	ViewClubs
)

// Options configures the TUI behavior.
type Options struct {
	RefreshInterval time.Duration // zero disables periodic refresh
}

// Model is the main Bubble Tea model for the browser.
type Model struct {
	ctx     context.Context
	service *eventhub.Service
	toasts  *Toasts
	keys    keyMap

	events  list.Model
	clubs   list.Model
	active  ViewType
	spinner spinner.Model
	detail  *DetailModal

	refreshInterval time.Duration

	// pending counts operations in flight; the spinner shows while > 0
	pending  int
	ready    bool
	toast    *Toast
	toastSeq int

	width    int
	height   int
	quitting bool
}

// New creates a new TUI model. toasts must be the Notifier the service was
// built with.
func New(ctx context.Context, service *eventhub.Service, toasts *Toasts, opts Options) Model {
	keys := defaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorBlue)

	return Model{
		ctx:             ctx,
		service:         service,
		toasts:          toasts,
		keys:            keys,
		events:          newList(keys.eventHelp),
		clubs:           newList(keys.clubHelp),
		spinner:         s,
		refreshInterval: opts.RefreshInterval,
		pending:         1, // bootstrap
	}
}

func newList(help func() []key.Binding) list.Model {
	l := list.New([]list.Item{}, Delegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.Styles.HelpStyle = lipgloss.NewStyle().PaddingLeft(1)
	l.FilterInput.Prompt = "Filter: "
	l.AdditionalShortHelpKeys = help

	// j joins a club
	l.KeyMap.CursorDown = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	)
	return l
}

// Init starts the spinner and restores the session. The first refresh is
// issued once bootstrap has finished so it carries the restored token.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, bootstrap(m.ctx, m.service))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.detail != nil {
			m.openDetail()
		}
		return m, nil

	case bootstrapDoneMsg:
		m.ready = true
		return m, tea.Batch(syncAll(m.ctx, m.service), m.scheduleRefresh())

	case syncDoneMsg:
		m.pending--
		cmd := tea.Batch(m.reload(), m.drainToasts())
		return m, cmd

	case actionDoneMsg:
		m.pending--
		cmd := tea.Batch(m.reload(), m.drainToasts())
		return m, cmd

	case refreshTickMsg:
		m.pending++
		return m, tea.Batch(syncAll(m.ctx, m.service), m.scheduleRefresh())

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveList(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Close) {
			m.detail = nil
			return m, nil
		}
		detail, cmd := m.detail.Update(msg)
		m.detail = &detail
		return m, cmd
	}

	// While filtering, every key belongs to the filter input.
	if m.activeList().FilterState() == list.Filtering {
		return m.updateActiveList(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchView):
		if m.active == ViewEvents {
			m.active = ViewClubs
		} else {
			m.active = ViewEvents
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.openDetail()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if !m.ready {
			return m, nil
		}
		m.pending++
		return m, syncAll(m.ctx, m.service)
	}

	if m.active == ViewEvents {
		if status, ok := m.keys.rsvpStatus(msg); ok {
			item, ok := m.events.SelectedItem().(EventItem)
			if !ok || !m.requireLogin() {
				cmd := m.drainToasts()
				return m, cmd
			}
			m.pending++
			return m, rsvpEvent(m.ctx, m.service, item.Event.ID, status)
		}
	}

	if m.active == ViewClubs && key.Matches(msg, m.keys.Join) {
		item, ok := m.clubs.SelectedItem().(ClubItem)
		if !ok || !m.requireLogin() {
			cmd := m.drainToasts()
			return m, cmd
		}
		m.pending++
		return m, joinClub(m.ctx, m.service, item.Club.ID)
	}

	return m.updateActiveList(msg)
}

// requireLogin queues an error toast and returns false when nobody is
// logged in.
func (m Model) requireLogin() bool {
	if _, err := m.service.Require(""); err != nil {
		m.toasts.NotifyError(err.Error())
		return false
	}
	return true
}

// openDetail shows the selected item in a DetailModal. It does nothing when
// the list is empty.
func (m *Model) openDetail() {
	var detail DetailModal
	switch item := m.activeList().SelectedItem().(type) {
	case EventItem:
		detail = NewEventDetail(item.Event, m.width, m.height)
	case ClubItem:
		detail = NewClubDetail(item.Club, m.width, m.height)
	default:
		m.detail = nil
		return
	}
	m.detail = &detail
}

func (m Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.active == ViewEvents {
		m.events, cmd = m.events.Update(msg)
	} else {
		m.clubs, cmd = m.clubs.Update(msg)
	}
	return m, cmd
}

func (m Model) activeList() list.Model {
	if m.active == ViewEvents {
		return m.events
	}
	return m.clubs
}

// reload copies the service caches into the lists.
func (m *Model) reload() tea.Cmd {
	events := m.service.Events()
	eventItems := make([]list.Item, len(events))
	for i, e := range events {
		eventItems[i] = EventItem{Event: e}
	}

	clubs := m.service.Clubs()
	clubItems := make([]list.Item, len(clubs))
	for i, c := range clubs {
		clubItems[i] = ClubItem{Club: c}
	}

	return tea.Batch(m.events.SetItems(eventItems), m.clubs.SetItems(clubItems))
}

// drainToasts shows the most recent queued toast.
func (m *Model) drainToasts() tea.Cmd {
	toasts := m.toasts.Drain()
	if len(toasts) == 0 {
		return nil
	}

	last := toasts[len(toasts)-1]
	m.toast = &last
	m.toastSeq++
	return expireToast(m.toastSeq)
}

func (m *Model) resize() {
	// banner, tabs and status line
	chrome := lipgloss.Height(bannerStyle.Render(styles.Banner())) + 3

	h := max(m.height-chrome, 0)
	m.events.SetSize(m.width, h)
	m.clubs.SetSize(m.width, h)
}
