package catalog

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// slash stands in for "/" so that "*" spans it. Titles are not paths.
const slash = "\x1f"

// Match keeps the items whose key matches the glob pattern, ignoring case.
// An empty pattern keeps everything.
func Match[T any](items []T, pattern string, key func(T) string) ([]T, error) {
	if pattern == "" {
		return items, nil
	}

	glob := strings.ReplaceAll(strings.ToLower(pattern), "/", slash)
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		name := strings.ReplaceAll(strings.ToLower(key(item)), "/", slash)
		ok, err := doublestar.Match(glob, name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// EventTitle is the Match key for events.
func EventTitle(e Event) string { return e.Title }

// ClubName is the Match key for clubs.
func ClubName(c Club) string { return c.Name }
