package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// EventItem wraps an event for the list component.
type EventItem struct {
	Event catalog.Event
}

// FilterValue returns the value used for filtering.
func (i EventItem) FilterValue() string {
	return i.Event.Title + " " + i.Event.Location
}

// ClubItem wraps a club for the list component.
type ClubItem struct {
	Club catalog.Club
}

// FilterValue returns the value used for filtering.
func (i ClubItem) FilterValue() string {
	return i.Club.Name
}

// Delegate renders both event and club items as a title line and a detail
// line.
type Delegate struct{}

// Height returns the height of each item.
func (d Delegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d Delegate) Spacing() int {
	return 1
}

// Update handles item updates.
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single item.
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var title, detail string

	switch it := item.(type) {
	case EventItem:
		title, detail = eventLines(it.Event)
	case ClubItem:
		title, detail = clubLines(it.Club)
	default:
		return
	}

	style := normalStyle
	if index == m.Index() {
		style = selectedStyle
		title = "> " + title
	} else {
		title = "  " + title
	}

	_, _ = fmt.Fprintf(w, "%s\n", style.Render(title))
	_, _ = fmt.Fprintf(w, "  %s", detail)
}

func eventLines(e catalog.Event) (string, string) {
	title := fmt.Sprintf("%-4d %s", e.ID, e.Title)

	when := e.Date
	if e.StartTime != "" {
		when += " " + e.StartTime
	}

	var attendance string
	switch left := e.SpotsLeft(); {
	case left < 0:
		attendance = fmt.Sprintf("%d going", e.RegisteredCount)
	case left == 0:
		attendance = fullStyle.Render("full")
	default:
		attendance = fmt.Sprintf("%d spots left", left)
	}

	detail := detailStyle.Render(fmt.Sprintf("%s %s %s %s ", when, iconDot, e.Location, iconDot)) + attendance
	return title, detail
}

func clubLines(c catalog.Club) (string, string) {
	title := fmt.Sprintf("%-4d %s", c.ID, c.Name)

	members := "members"
	if c.MemberCount == 1 {
		members = "member"
	}

	detail := fmt.Sprintf("%d %s", c.MemberCount, members)
	if c.CreatorName != "" {
		detail += fmt.Sprintf(" %s led by %s", iconDot, c.CreatorName)
	}
	return title, detailStyle.Render(detail)
}
