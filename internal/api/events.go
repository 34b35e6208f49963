package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

// ListEvents calls GET /events with params forwarded as query values.
func (c *Client) ListEvents(ctx context.Context, params catalog.Params) ([]catalog.Event, error) {
	var out struct {
		Events []catalog.Event `json:"events"`
	}
	err := c.do(ctx, call{method: http.MethodGet, path: "/events", query: params.Values()}, &out)
	return out.Events, err
}

// CreateEvent calls POST /events and returns the record the backend stored.
func (c *Client) CreateEvent(ctx context.Context, in catalog.EventInput) (catalog.Event, error) {
	var out catalog.Event
	err := c.do(ctx, call{method: http.MethodPost, path: "/events", body: in}, &out)
	return out, err
}

// RSVPEvent calls POST /events/{id}/rsvp.
func (c *Client) RSVPEvent(ctx context.Context, eventID int, status catalog.RSVPStatus) error {
	body := struct {
		Status catalog.RSVPStatus `json:"status"`
	}{Status: status}

	return c.do(ctx, call{method: http.MethodPost, path: fmt.Sprintf("/events/%d/rsvp", eventID), body: body}, nil)
}
