package keycloak

import (
	"fmt"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const (
	pemHeader     = "-----BEGIN PUBLIC KEY-----"
	pemFooter     = "-----END PUBLIC KEY-----"
	pemLineLength = 64
)

// FormatPublicKey wraps a raw base64 public-key string into a PEM block:
// 64-character lines between the standard PUBLIC KEY markers, each body
// line newline-terminated, no newline after the footer. The input is not
// validated; malformed key material surfaces later as a verification
// failure.
func FormatPublicKey(raw string) string {
	var b strings.Builder
	b.WriteString(pemHeader)
	b.WriteByte('\n')
	for start := 0; start < len(raw); start += pemLineLength {
		end := start + pemLineLength
		if end > len(raw) {
			end = len(raw)
		}
		b.WriteString(raw[start:end])
		b.WriteByte('\n')
	}
	b.WriteString(pemFooter)
	return b.String()
}

// hasPEMArmor reports whether key material already carries a PEM header.
func hasPEMArmor(key string) bool {
	return strings.Contains(key, "-----BEGIN")
}

// verificationKey parses configured key material into the key type the
// signing algorithm expects: raw secret bytes for HMAC, a parsed public
// key for RSA and ECDSA.
func verificationKey(alg SigningMethod, key string) (any, error) {
	switch alg {
	case HS256, HS384, HS512:
		return []byte(key), nil
	case RS256, RS384, RS512:
		pub, err := gojwt.ParseRSAPublicKeyFromPEM([]byte(key))
		if err != nil {
			return nil, fmt.Errorf("parse RSA public key: %w", err)
		}
		return pub, nil
	case ES256, ES384, ES512:
		pub, err := gojwt.ParseECPublicKeyFromPEM([]byte(key))
		if err != nil {
			return nil, fmt.Errorf("parse ECDSA public key: %w", err)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("unsupported signing method: %s", alg)
	}
}
