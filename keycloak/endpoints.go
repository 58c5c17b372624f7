package keycloak

import (
	"net/url"
	"strings"
)

// openid-connect protocol endpoints relative to the realm base.
const (
	endpointAuthorize    = "auth"
	endpointToken        = "token"
	endpointUserInfo     = "userinfo"
	endpointLogout       = "logout"
	endpointRegistration = "registrations"
)

// realmEndpoint builds a realm-scoped protocol endpoint URL:
// {base}/realms/{realm}/protocol/openid-connect/{endpoint}.
func realmEndpoint(baseURL, realm, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/realms/" + realm + "/protocol/openid-connect/" + endpoint
}

// BaseAuthorizationURL returns the authorization endpoint for the
// configured realm.
func (p *Provider) BaseAuthorizationURL() string {
	return realmEndpoint(p.cfg.AuthServerURL, p.cfg.Realm, endpointAuthorize)
}

// BaseAccessTokenURL returns the token endpoint for the configured realm.
func (p *Provider) BaseAccessTokenURL() string {
	return realmEndpoint(p.cfg.AuthServerURL, p.cfg.Realm, endpointToken)
}

// ResourceOwnerDetailsURL returns the userinfo endpoint for the configured
// realm.
func (p *Provider) ResourceOwnerDetailsURL() string {
	return realmEndpoint(p.cfg.AuthServerURL, p.cfg.Realm, endpointUserInfo)
}

// RegistrationURL returns the account-registration endpoint for the
// configured realm.
func (p *Provider) RegistrationURL() string {
	return realmEndpoint(p.cfg.AuthServerURL, p.cfg.Realm, endpointRegistration)
}

// LogoutURL returns the end-session endpoint for the configured realm.
// Optional parameters (redirect_uri, id_token_hint, ...) are appended as
// an encoded query string.
func (p *Provider) LogoutURL(params map[string]string) string {
	u := realmEndpoint(p.cfg.AuthServerURL, p.cfg.Realm, endpointLogout)
	if len(params) == 0 {
		return u
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return u + "?" + q.Encode()
}

// AuthCodeOption customizes an authorization URL.
type AuthCodeOption func(url.Values)

// WithRedirectURI sets the redirect_uri parameter.
func WithRedirectURI(uri string) AuthCodeOption {
	return func(q url.Values) {
		q.Set("redirect_uri", uri)
	}
}

// WithScopes overrides the configured scopes for one authorization URL.
func WithScopes(scopes ...string) AuthCodeOption {
	return func(q url.Values) {
		q.Set("scope", strings.Join(scopes, " "))
	}
}

// WithExtraParam sets an arbitrary extra authorization parameter, such as
// kc_idp_hint or prompt.
func WithExtraParam(key, value string) AuthCodeOption {
	return func(q url.Values) {
		q.Set(key, value)
	}
}

// AuthCodeURL builds the browser redirect URL for the authorization-code
// flow. The configured scopes are requested unless overridden.
func (p *Provider) AuthCodeURL(state string, opts ...AuthCodeOption) string {
	return authCodeURL(p.BaseAuthorizationURL(), p.cfg.ClientID, p.cfg.Scopes, state, opts)
}

// AuthCodeURLDocker builds the same authorization URL against an
// alternative base URL. Useful when the server is reachable from the
// browser on a different host than from inside a container network.
func (p *Provider) AuthCodeURLDocker(baseURL, state string, opts ...AuthCodeOption) string {
	authURL := realmEndpoint(baseURL, p.cfg.Realm, endpointAuthorize)
	return authCodeURL(authURL, p.cfg.ClientID, p.cfg.Scopes, state, opts)
}

func authCodeURL(authURL, clientID string, scopes []string, state string, opts []AuthCodeOption) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", clientID)
	q.Set("scope", strings.Join(scopes, " "))
	if state != "" {
		q.Set("state", state)
	}
	for _, opt := range opts {
		opt(q)
	}
	return authURL + "?" + q.Encode()
}
