package oauth2

import (
	"encoding/json"
	"errors"
	"fmt"
)

// IdentityProviderError is an explicit error payload returned by the
// provider on a grant or userinfo call. It is never retried internally;
// the full payload is preserved for diagnostics.
type IdentityProviderError struct {
	// Code is the provider's "error" field (e.g. "invalid_grant").
	Code string
	// Message combines the error code and description.
	Message string
	// Raw is the full decoded response payload.
	Raw map[string]any
}

// Error implements the error interface.
func (e *IdentityProviderError) Error() string {
	return fmt.Sprintf("oauth2: provider error: %s", e.Message)
}

// AsIdentityProviderError extracts an *IdentityProviderError from an error
// chain.
func AsIdentityProviderError(err error) (*IdentityProviderError, bool) {
	var e *IdentityProviderError
	ok := errors.As(err, &e)
	return e, ok
}

// checkProviderError inspects a decoded provider payload and returns a
// typed error when it carries a non-empty "error" field.
func checkProviderError(raw map[string]any) *IdentityProviderError {
	code := getString(raw, "error")
	if code == "" {
		return nil
	}
	message := code
	if desc := getString(raw, "error_description"); desc != "" {
		message = code + ": " + desc
	}
	return &IdentityProviderError{Code: code, Message: message, Raw: raw}
}

// decodeProviderError decodes a raw response body and returns a typed error
// when it carries a provider error payload. Non-JSON bodies yield nil.
func decodeProviderError(body []byte) *IdentityProviderError {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	return checkProviderError(raw)
}
