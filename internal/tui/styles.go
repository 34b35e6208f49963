// Package tui implements the Bubble Tea browser for eventhub.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/eventhub/internal/styles"
)

var (
	// Selected item style (matches border color).
	selectedStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	// Normal item style (no color, uses terminal default).
	normalStyle = lipgloss.NewStyle()

	// Secondary text such as dates, locations and counts.
	detailStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	fullStyle = lipgloss.NewStyle().
			Foreground(styles.ColorYellow)

	bannerStyle = styles.BannerStyle.
			PaddingLeft(1).
			PaddingBottom(1)

	tabSelectedStyle = lipgloss.NewStyle().
				Foreground(styles.ColorBlue).
				Bold(true).
				Underline(true).
				PaddingLeft(1).
				PaddingRight(1)

	tabNormalStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(1).
			PaddingRight(1)

	statusStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(2).
			PaddingTop(1)
)

const iconDot = "•"

// Modal styles.
var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBlue).
			Padding(0, 1)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			MarginTop(1)

	detailScrollStyle = lipgloss.NewStyle().
				Foreground(styles.ColorGray)
)
