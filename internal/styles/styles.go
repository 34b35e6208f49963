// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// Banner renders the application name as ASCII art.
func Banner() string {
	return strings.TrimRight(figure.NewFigure("eventhub", "cybermedium", true).String(), "\n ")
}

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// TitleStyle styles section titles and selected list items.
var TitleStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// MutedStyle styles secondary text such as dates and counts.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// SuccessStyle styles success toasts.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// ErrorStyle styles error toasts and status lines.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// InfoStyle styles neutral toasts.
var InfoStyle = lipgloss.NewStyle().
	Foreground(ColorYellow)

// DividerStyle styles horizontal dividers.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FormTheme returns the huh theme used by interactive prompts.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorBlue)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorGray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(ColorRed).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorGreen)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorGray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBlue)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(ColorWhite)

	return t
}
