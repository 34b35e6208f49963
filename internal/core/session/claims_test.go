package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestParseClaims(t *testing.T) {
	iat := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	exp := iat.Add(time.Hour)

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		wantSub string
	}{
		{
			name:    "numeric subject",
			claims:  jwt.MapClaims{"sub": 42, "iat": iat.Unix(), "exp": exp.Unix()},
			wantSub: "42",
		},
		{
			name:    "string subject",
			claims:  jwt.MapClaims{"sub": "42", "iat": iat.Unix(), "exp": exp.Unix()},
			wantSub: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseClaims(signedToken(t, tt.claims))
			require.NoError(t, err)

			assert.Equal(t, tt.wantSub, c.Subject)
			assert.True(t, c.IssuedAt.Equal(iat))
			assert.True(t, c.ExpiresAt.Equal(exp))
		})
	}
}

func TestParseClaims_Garbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Claims{}.Expired(now), "no expiry never expires")
	assert.False(t, Claims{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Claims{ExpiresAt: now}.Expired(now))
	assert.True(t, Claims{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}
