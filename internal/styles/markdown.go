package styles

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal, wrapped at width. The raw
// markdown is returned when rendering fails.
func RenderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// TrimDecorative strips blank lines and horizontal rules that glamour adds
// around rendered content.
func TrimDecorative(content string) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	start := 0
	for start < len(lines) && isDecorativeLine(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isDecorativeLine(lines[end-1]) {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

// isDecorativeLine reports whether a line holds only rule characters and
// spaces once ANSI codes are removed.
func isDecorativeLine(line string) bool {
	stripped := strings.TrimSpace(ansiPattern.ReplaceAllString(line, ""))
	for _, r := range stripped {
		if r != '─' && r != '━' && r != '-' && r != '=' {
			return false
		}
	}
	return true
}
