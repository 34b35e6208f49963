package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/core/validate"
)

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. Role is optional; the backend
// defaults new accounts to "user".
type Registration struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     session.Role `json:"role,omitempty"`
}

// Validate only checks that both fields are present. Whether they are
// correct is for the backend to say.
func (c Credentials) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if err := validate.Required(c.Email); err != nil {
		errs = errs.Append("email", err)
	}
	if err := validate.Required(c.Password); err != nil {
		errs = errs.Append("password", err)
	}
	return errs.ToError()
}

// Validate checks the registration against the backend's account rules.
func (r Registration) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if err := validate.Required(r.Name); err != nil {
		errs = errs.Append("name", err)
	}
	if err := validate.Email(r.Email); err != nil {
		errs = errs.Append("email", err)
	}
	if err := validate.Password(r.Password); err != nil {
		errs = errs.Append("password", err)
	}
	if r.Role != "" && !r.Role.Valid() {
		errs = errs.Append("role", fmt.Errorf("unknown role %q", r.Role))
	}
	return errs.ToError()
}

// AuthPayload is the data returned by login and register.
type AuthPayload struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

// Me calls GET /auth/me. A non-empty token is used instead of the token
// source, which lets a restored token be checked before it is trusted.
func (c *Client) Me(ctx context.Context, token string) (session.User, error) {
	var user session.User
	err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me", token: token}, &user)
	return user, err
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthPayload, error) {
	var out AuthPayload
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: creds}, &out)
	return out, err
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, reg Registration) (AuthPayload, error) {
	var out AuthPayload
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: reg}, &out)
	return out, err
}
