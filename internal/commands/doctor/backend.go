package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/session"
)

// BackendCheck verifies the backend answers and, when a token is stored,
// that it still accepts it.
type BackendCheck struct {
	client *api.Client
	tokens session.TokenStore
}

// NewBackendCheck creates a check against the client's backend.
func NewBackendCheck(client *api.Client, tokens session.TokenStore) *BackendCheck {
	return &BackendCheck{client: client, tokens: tokens}
}

func (c *BackendCheck) Name() string {
	return "Backend"
}

func (c *BackendCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	events, err := c.client.ListEvents(ctx, nil)
	if err != nil {
		result.Items = append(result.Items, fail("Reachable", c.client.BaseURL()+": "+err.Error()))
		return result
	}
	result.Items = append(result.Items, pass("Reachable", fmt.Sprintf("%s (%d events)", c.client.BaseURL(), len(events))))

	token, err := c.tokens.Load(ctx)
	if err != nil {
		return result
	}

	user, err := c.client.Me(ctx, token)
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		result.Items = append(result.Items, warn("Session", "stored token was rejected, run 'eventhub login'"))
	case err != nil:
		result.Items = append(result.Items, fail("Session", err.Error()))
	default:
		result.Items = append(result.Items, pass("Session", fmt.Sprintf("%s (%s)", user.Name, user.Role)))
	}

	return result
}
