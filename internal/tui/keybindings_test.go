package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

func TestKeyMap_RSVPStatus(t *testing.T) {
	keys := defaultKeyMap()

	tests := []struct {
		key    rune
		want   catalog.RSVPStatus
		wantOK bool
	}{
		{key: 'g', want: catalog.RSVPGoing, wantOK: true},
		{key: 'i', want: catalog.RSVPInterested, wantOK: true},
		{key: 'x', want: catalog.RSVPDeclined, wantOK: true},
		{key: 'j', wantOK: false},
		{key: 'r', wantOK: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := keys.rsvpStatus(runeKey(tt.key))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := defaultKeyMap()

	helpKeys := func(bindings []key.Binding) []string {
		out := make([]string, 0, len(bindings))
		for _, b := range bindings {
			out = append(out, b.Help().Key)
		}
		return out
	}

	assert.Equal(t, []string{"tab", "enter", "g", "i", "x", "r"}, helpKeys(keys.eventHelp()))
	assert.Equal(t, []string{"tab", "enter", "j", "r"}, helpKeys(keys.clubHelp()))
}

func TestNewList_JDoesNotMoveCursor(t *testing.T) {
	l := newList(defaultKeyMap().clubHelp)

	assert.False(t, key.Matches(runeKey('j'), l.KeyMap.CursorDown))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, l.KeyMap.CursorDown))
}
