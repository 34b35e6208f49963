package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// keyMap holds the browser's own bindings. List navigation and filtering
// use the bubbles list defaults, except that j is taken by join.
type keyMap struct {
	Quit       key.Binding
	SwitchView key.Binding
	Refresh    key.Binding
	Going      key.Binding
	Interested key.Binding
	Declined   key.Binding
	Join       key.Binding
	Open       key.Binding
	Close      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "events/clubs"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Going: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "going"),
		),
		Interested: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "interested"),
		),
		Declined: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "decline"),
		),
		Join: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "join"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// rsvpStatus maps a pressed key to an RSVP status.
func (k keyMap) rsvpStatus(msg tea.KeyMsg) (catalog.RSVPStatus, bool) {
	switch {
	case key.Matches(msg, k.Going):
		return catalog.RSVPGoing, true
	case key.Matches(msg, k.Interested):
		return catalog.RSVPInterested, true
	case key.Matches(msg, k.Declined):
		return catalog.RSVPDeclined, true
	}
	return "", false
}

func (k keyMap) eventHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.Open, k.Going, k.Interested, k.Declined, k.Refresh}
}

func (k keyMap) clubHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.Open, k.Join, k.Refresh}
}
