package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/styles"
)

// Detail modal layout constants.
const (
	detailModalMaxWidth  = 90 // maximum modal width in columns
	detailModalMaxHeight = 30 // maximum modal height in rows
	detailModalMargin    = 4  // margin from screen edges
	detailModalChrome    = 6  // rows for title, divider, help and border
	detailModalPadding   = 4  // padding inside content area
	glamourGutter        = 2  // glamour adds gutter space
)

// DetailModal shows the markdown detail view of an event or club.
type DetailModal struct {
	title    string
	markdown string
	viewport viewport.Model
}

// NewEventDetail creates a detail modal for the event.
func NewEventDetail(e catalog.Event, width, height int) DetailModal {
	return newDetailModal(fmt.Sprintf("Event #%d", e.ID), e.Markdown(), width, height)
}

// NewClubDetail creates a detail modal for the club.
func NewClubDetail(c catalog.Club, width, height int) DetailModal {
	return newDetailModal(fmt.Sprintf("Club #%d", c.ID), c.Markdown(), width, height)
}

func newDetailModal(title, markdown string, width, height int) DetailModal {
	modalWidth, modalHeight := detailModalSize(width, height)

	vp := viewport.New(modalWidth-detailModalPadding, max(modalHeight-detailModalChrome, 1))
	vp.Style = lipgloss.NewStyle()

	rendered := styles.RenderMarkdown(markdown, modalWidth-detailModalPadding-glamourGutter)
	vp.SetContent(styles.TrimDecorative(rendered))

	return DetailModal{title: title, markdown: markdown, viewport: vp}
}

func detailModalSize(width, height int) (int, int) {
	return min(width-detailModalMargin, detailModalMaxWidth), min(height-detailModalMargin, detailModalMaxHeight)
}

// Update scrolls the content.
func (m DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Overlay renders the modal centered in a width x height area.
func (m DetailModal) Overlay(width, height int) string {
	modalWidth, modalHeight := detailModalSize(width, height)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = detailScrollStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render(m.title+scrollInfo),
		styles.DividerStyle.Render(strings.Repeat("─", modalWidth-detailModalPadding)),
		m.viewport.View(),
		modalHelpStyle.Render("[↑/↓] scroll  [enter/esc] close"),
	)

	modal := modalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
