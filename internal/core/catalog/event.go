package catalog

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/eventhub/internal/core/validate"
)

// RSVPStatus is the attendance state sent to the backend. The client does
// not restrict the value; these are the states the backend knows about.
type RSVPStatus string

const (
	RSVPGoing      RSVPStatus = "going"
	RSVPInterested RSVPStatus = "interested"
	RSVPDeclined   RSVPStatus = "declined"
)

// Event is the canonical event record returned by the backend.
type Event struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Date            string `json:"date,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	Location        string `json:"location,omitempty"`
	ClubID          *int   `json:"club_id,omitempty"`
	ClubName        string `json:"club_name,omitempty"`
	CreatedBy       int    `json:"created_by,omitempty"`
	CreatorName     string `json:"creator_name,omitempty"`
	Capacity        int    `json:"capacity,omitempty"`
	RegisteredCount int    `json:"registered_count"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func (e Event) RecordID() int { return e.ID }

// SpotsLeft returns the remaining capacity, or -1 when capacity is unknown.
func (e Event) SpotsLeft() int {
	if e.Capacity <= 0 {
		return -1
	}
	if left := e.Capacity - e.RegisteredCount; left > 0 {
		return left
	}
	return 0
}

// EventInput is the payload for creating an event.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	ClubID      *int   `json:"club_id,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
}

// Validate checks that the fields the create form marks as required are
// present. Everything else is left to the backend.
func (in EventInput) Validate() error {
	var errs criterio.FieldErrorsBuilder

	required := []struct {
		field string
		value string
	}{
		{"title", in.Title},
		{"date", in.Date},
		{"start_time", in.StartTime},
		{"end_time", in.EndTime},
		{"location", in.Location},
	}
	for _, r := range required {
		if err := validate.Required(r.value); err != nil {
			errs = errs.Append(r.field, err)
		}
	}

	if in.Capacity < 0 {
		errs = errs.Append("capacity", fmt.Errorf("cannot be negative"))
	}

	return errs.ToError()
}
