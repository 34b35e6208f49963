package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/eventhub/internal/eventhub"
	"github.com/hay-kot/eventhub/internal/styles"
)

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.detail != nil {
		return m.detail.Overlay(m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		bannerStyle.Render(styles.Banner()),
		m.renderTabs(),
		m.renderBody(),
		m.renderStatus(),
	)
}

func (m Model) renderTabs() string {
	eventsTab := tabNormalStyle.Render(fmt.Sprintf("Events (%d)", len(m.events.Items())))
	clubsTab := tabNormalStyle.Render(fmt.Sprintf("Clubs (%d)", len(m.clubs.Items())))

	if m.active == ViewEvents {
		eventsTab = tabSelectedStyle.Render(fmt.Sprintf("Events (%d)", len(m.events.Items())))
	} else {
		clubsTab = tabSelectedStyle.Render(fmt.Sprintf("Clubs (%d)", len(m.clubs.Items())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, eventsTab, clubsTab, m.renderUser())
}

func (m Model) renderUser() string {
	if !m.ready {
		return ""
	}

	current := m.service.Session()
	if !current.Authenticated() {
		return detailStyle.Render("  " + iconDot + " not logged in")
	}
	return detailStyle.Render(fmt.Sprintf("  %s %s (%s)", iconDot, current.User.Name, current.User.Role))
}

func (m Model) renderBody() string {
	l := m.activeList()
	if len(l.Items()) == 0 && m.pending == 0 {
		what := "events"
		if m.active == ViewClubs {
			what = "clubs"
		}
		return emptyStyle.Render(fmt.Sprintf("No %s yet. Press r to refresh.", what))
	}
	return l.View()
}

// renderStatus shows, in order of priority: the current toast, a spinner
// while work is pending, or the last fetch error for the visible view.
func (m Model) renderStatus() string {
	if m.toast != nil {
		style := styles.InfoStyle
		switch m.toast.Level {
		case LevelSuccess:
			style = styles.SuccessStyle
		case LevelError:
			style = styles.ErrorStyle
		}
		return statusStyle.Render(style.Render(m.toast.Message))
	}

	if m.pending > 0 {
		label := "Loading..."
		if !m.ready {
			label = "Restoring session..."
		}
		return statusStyle.Render(m.spinner.View() + " " + label)
	}

	kind := eventhub.KindEvents
	if m.active == ViewClubs {
		kind = eventhub.KindClubs
	}
	if st := m.service.Status(kind); st.Err != "" {
		return statusStyle.Render(styles.ErrorStyle.Render(st.Err))
	}

	return ""
}
