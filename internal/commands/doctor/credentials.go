package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/eventhub/internal/core/kv"
	"github.com/hay-kot/eventhub/internal/core/session"
)

// CredentialFile is the file-backed store the token is persisted in.
type CredentialFile interface {
	kv.Store
	Path() string
}

// CredentialsCheck inspects the persisted token without contacting the
// backend.
type CredentialsCheck struct {
	file   CredentialFile
	tokens session.TokenStore
	now    func() time.Time
}

func NewCredentialsCheck(file CredentialFile) *CredentialsCheck {
	return &CredentialsCheck{
		file:   file,
		tokens: session.NewKVTokenStore(file),
		now:    time.Now,
	}
}

func (c *CredentialsCheck) Name() string {
	return "Credentials"
}

func (c *CredentialsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	path := c.file.Path()
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Items = append(result.Items, warn("Token file", "not logged in"))
		return result
	case err != nil:
		result.Items = append(result.Items, fail("Token file", err.Error()))
		return result
	}

	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		result.Items = append(result.Items, warn("Token file", fmt.Sprintf("%s is readable by other users (%#o)", path, perm)))
	} else {
		result.Items = append(result.Items, pass("Token file", path))
	}

	entries, err := c.file.List(ctx, "")
	if err != nil {
		result.Items = append(result.Items, fail("Token file", err.Error()))
		return result
	}
	var stray []string
	for _, e := range entries {
		if e.Key != session.TokenKey {
			stray = append(stray, e.Key)
		}
	}
	if len(stray) > 0 {
		result.Items = append(result.Items, warn("Entries", "unexpected keys: "+strings.Join(stray, ", ")))
	}

	token, err := c.tokens.Load(ctx)
	switch {
	case errors.Is(err, session.ErrNoToken):
		result.Items = append(result.Items, warn("Token", "not logged in"))
		return result
	case err != nil:
		result.Items = append(result.Items, fail("Token", err.Error()))
		return result
	}

	claims, err := session.ParseClaims(token)
	switch {
	case err != nil:
		result.Items = append(result.Items, warn("Token", "not a readable JWT, the backend will decide"))
	case claims.Expired(c.now()):
		result.Items = append(result.Items, warn("Token", "expired "+claims.ExpiresAt.Local().Format(time.RFC1123)+", run 'eventhub login'"))
	case claims.ExpiresAt.IsZero():
		result.Items = append(result.Items, pass("Token", "no expiry"))
	default:
		result.Items = append(result.Items, pass("Token", "expires "+claims.ExpiresAt.Local().Format(time.RFC1123)))
	}

	return result
}
