package oauth2

import (
	"strings"
	"time"
)

// Token is the bearer credential returned by a grant exchange.
// It is read-only after construction.
type Token struct {
	// AccessToken is the opaque bearer value presented to resource servers.
	AccessToken string

	// RefreshToken is the refresh credential (may be empty).
	RefreshToken string

	// TokenType is typically "Bearer".
	TokenType string

	// ExpiresAt is when the access token expires (zero if the provider
	// did not report a lifetime).
	ExpiresAt time.Time

	// Scopes are the granted scopes (may differ from requested).
	Scopes []string

	// Raw holds the full token-endpoint response for provider-specific
	// extraction.
	Raw map[string]any
}

// Expired reports whether the access token is past its expiry.
// Tokens without a reported lifetime never expire client-side.
func (t *Token) Expired() bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(t.ExpiresAt)
}

// tokenFromResponse builds a Token from a decoded token-endpoint payload.
func tokenFromResponse(raw map[string]any) *Token {
	tok := &Token{
		AccessToken:  getString(raw, "access_token"),
		RefreshToken: getString(raw, "refresh_token"),
		TokenType:    getString(raw, "token_type"),
		Raw:          raw,
	}
	if expiresIn, ok := getFloat64(raw, "expires_in"); ok && expiresIn > 0 {
		tok.ExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	if scope := getString(raw, "scope"); scope != "" {
		tok.Scopes = strings.Fields(scope)
	}
	return tok
}

func getString(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func getFloat64(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}
