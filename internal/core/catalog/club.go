package catalog

import (
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/eventhub/internal/core/validate"
)

// Club is the canonical club record returned by the backend.
type Club struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedBy   int    `json:"created_by,omitempty"`
	CreatorName string `json:"creator_name,omitempty"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (c Club) RecordID() int { return c.ID }

// ClubInput is the payload for creating a club.
type ClubInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validate checks that the club has a name.
func (in ClubInput) Validate() error {
	if err := validate.Required(in.Name); err != nil {
		return criterio.NewFieldErrors("name", err)
	}
	return nil
}
