package keycloak

import (
	"encoding/json"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ClockSkewLeeway is the tolerance applied to exp/nbf/iat claims during
// verification, absorbing small clock differences between this client and
// the identity provider.
const ClockSkewLeeway = 5 * time.Second

// RawResourceOwnerResponse is a userinfo response before resolution:
// either an encoded compact token that needs signature verification, or an
// already-structured claims object.
type RawResourceOwnerResponse struct {
	encoded   string
	claims    map[string]any
	isEncoded bool
}

// EncodedResponse wraps a compact signed token as a raw response.
func EncodedResponse(token string) RawResourceOwnerResponse {
	return RawResourceOwnerResponse{encoded: token, isEncoded: true}
}

// StructuredResponse wraps an already-decoded claims object as a raw
// response.
func StructuredResponse(claims map[string]any) RawResourceOwnerResponse {
	return RawResourceOwnerResponse{claims: claims}
}

// ClassifyResponse decides how a userinfo body must be resolved. A body
// that unmarshals into a JSON object is structured; anything else is
// treated as an encoded compact token.
func ClassifyResponse(body []byte) RawResourceOwnerResponse {
	var claims map[string]any
	if err := json.Unmarshal(body, &claims); err == nil {
		return StructuredResponse(claims)
	}
	return EncodedResponse(strings.TrimSpace(string(body)))
}

// ResolveResponse turns a raw userinfo response into verified claims.
// Structured responses pass through untouched. Encoded responses require a
// configured algorithm and key: missing configuration yields an
// EncryptionConfigurationError, and any parse or verification failure
// (signature mismatch, algorithm other than the configured one, expired or
// not-yet-valid beyond the leeway) yields a SignatureVerificationError.
func (p *Provider) ResolveResponse(raw RawResourceOwnerResponse) (map[string]any, error) {
	if !raw.isEncoded {
		return raw.claims, nil
	}
	if !p.cfg.usesEncryption() {
		return nil, errUndeterminedEncryption()
	}
	key, err := verificationKey(p.cfg.EncryptionAlgorithm, p.cfg.EncryptionKey)
	if err != nil {
		return nil, &SignatureVerificationError{Cause: err}
	}
	claims := gojwt.MapClaims{}
	_, err = gojwt.ParseWithClaims(raw.encoded, claims,
		func(*gojwt.Token) (any, error) { return key, nil },
		gojwt.WithValidMethods([]string{string(p.cfg.EncryptionAlgorithm)}),
		gojwt.WithLeeway(ClockSkewLeeway),
	)
	if err != nil {
		return nil, &SignatureVerificationError{Cause: err}
	}
	return map[string]any(claims), nil
}
