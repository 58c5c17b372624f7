package keycloak

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/keycloak/validation"
)

// SigningMethod defines supported token signature algorithms.
type SigningMethod string

const (
	HS256 SigningMethod = "HS256"
	HS384 SigningMethod = "HS384"
	HS512 SigningMethod = "HS512"
	RS256 SigningMethod = "RS256"
	RS384 SigningMethod = "RS384"
	RS512 SigningMethod = "RS512"
	ES256 SigningMethod = "ES256"
	ES384 SigningMethod = "ES384"
	ES512 SigningMethod = "ES512"
)

// DefaultScopes are the scopes requested when none are configured.
var DefaultScopes = []string{"name", "email"}

// Config configures the Keycloak provider adapter.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// AuthServerURL is the base URL of the Keycloak server, without the
	// realm path (e.g. "https://idp.example.com"). A trailing slash is
	// stripped.
	AuthServerURL string `mapstructure:"auth_server_url" validate:"required"`

	// Realm is the tenant namespace the endpoints are scoped to.
	Realm string `mapstructure:"realm" validate:"required"`

	// ClientID is the OAuth2 client identifier.
	ClientID string `mapstructure:"client_id" validate:"required"`

	// ClientSecret is the confidential client secret, used for HTTP basic
	// client authentication on the token endpoint.
	ClientSecret string `mapstructure:"client_secret"`

	// EncryptionAlgorithm is the signature algorithm of signed userinfo
	// responses. Must be configured together with EncryptionKey.
	EncryptionAlgorithm SigningMethod `mapstructure:"encryption_algorithm" validate:"omitempty,oneof=HS256 HS384 HS512 RS256 RS384 RS512 ES256 ES384 ES512"`

	// EncryptionKey is the verification key material: PEM public key for
	// RS*/ES* (bare base64 is wrapped automatically), raw secret for HS*.
	EncryptionKey string `mapstructure:"encryption_key"`

	// Scopes are the OAuth2 scopes requested in authorization URLs
	// (default: ["name", "email"]).
	Scopes []string `mapstructure:"scopes"`

	// Timeout bounds each HTTP round trip (default: 10s).
	Timeout time.Duration `mapstructure:"timeout"`
}

// ApplyDefaults normalizes the configuration: default scopes and timeout,
// trailing-slash stripping, and PEM-wrapping of bare base64 key material
// for asymmetric algorithms.
func (c *Config) ApplyDefaults() {
	c.AuthServerURL = strings.TrimRight(c.AuthServerURL, "/")
	if len(c.Scopes) == 0 {
		c.Scopes = append([]string(nil), DefaultScopes...)
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.EncryptionKey != "" && !hasPEMArmor(c.EncryptionKey) {
		switch c.EncryptionAlgorithm {
		case HS256, HS384, HS512:
			// HMAC secrets are used as-is.
		default:
			c.EncryptionKey = FormatPublicKey(c.EncryptionKey)
		}
	}
}

// Validate checks required fields and rejects partial encryption
// configuration: algorithm and key must be configured together or not at
// all. A fully absent pair is legal; verification of encoded responses
// then fails lazily with an EncryptionConfigurationError.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if (c.EncryptionAlgorithm == "") != (c.EncryptionKey == "") {
		return fmt.Errorf("encryption_algorithm and encryption_key must be configured together")
	}
	return nil
}

// usesEncryption reports whether signed responses can be verified: both
// the algorithm and the key material are configured.
func (c *Config) usesEncryption() bool {
	return c.EncryptionAlgorithm != "" && c.EncryptionKey != ""
}
