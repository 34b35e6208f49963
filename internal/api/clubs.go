package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// ListClubs calls GET /clubs with params forwarded as query values.
func (c *Client) ListClubs(ctx context.Context, params catalog.Params) ([]catalog.Club, error) {
	var out struct {
		Clubs []catalog.Club `json:"clubs"`
	}
	err := c.do(ctx, call{method: http.MethodGet, path: "/clubs", query: params.Values()}, &out)
	return out.Clubs, err
}

// CreateClub calls POST /clubs and returns the record the backend stored.
func (c *Client) CreateClub(ctx context.Context, in catalog.ClubInput) (catalog.Club, error) {
	var out catalog.Club
	err := c.do(ctx, call{method: http.MethodPost, path: "/clubs", body: in}, &out)
	return out, err
}

// JoinClub calls POST /clubs/{id}/join.
func (c *Client) JoinClub(ctx context.Context, clubID int) error {
	return c.do(ctx, call{method: http.MethodPost, path: fmt.Sprintf("/clubs/%d/join", clubID)}, nil)
}
