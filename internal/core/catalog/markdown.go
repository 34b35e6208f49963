package catalog

import (
	"fmt"
	"strings"
)

// TimeRange formats the start and end time as "10:00-14:00". It returns the
// start time alone when no end time is known.
func (e Event) TimeRange() string {
	if e.StartTime != "" && e.EndTime != "" {
		return e.StartTime + "-" + e.EndTime
	}
	return e.StartTime
}

// Attendance summarizes capacity as "spots left/capacity", "full", or a
// head count when capacity is unknown.
func (e Event) Attendance() string {
	switch left := e.SpotsLeft(); {
	case left < 0:
		return fmt.Sprintf("%d going", e.RegisteredCount)
	case left == 0:
		return "full"
	default:
		return fmt.Sprintf("%d/%d", left, e.Capacity)
	}
}

// Markdown is the detail view of the event.
func (e Event) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", e.Title)

	if e.Date != "" {
		fmt.Fprintf(&b, "- **When:** %s %s\n", e.Date, e.TimeRange())
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "- **Where:** %s\n", e.Location)
	}
	if e.ClubName != "" {
		fmt.Fprintf(&b, "- **Club:** %s\n", e.ClubName)
	}
	if e.CreatorName != "" {
		fmt.Fprintf(&b, "- **Organizer:** %s\n", e.CreatorName)
	}
	fmt.Fprintf(&b, "- **Attendance:** %s\n", e.Attendance())

	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}

	return b.String()
}

// Markdown is the detail view of the club.
func (c Club) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	fmt.Fprintf(&b, "- **Members:** %d\n", c.MemberCount)
	if c.CreatorName != "" {
		fmt.Fprintf(&b, "- **Led by:** %s\n", c.CreatorName)
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(&b, "- **Founded:** %s\n", c.CreatedAt)
	}

	if c.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Description)
	}

	return b.String()
}
