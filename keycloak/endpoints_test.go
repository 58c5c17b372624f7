package keycloak

import (
	"net/url"
	"strings"
	"testing"
)

func newTestProvider(t *testing.T, mutate ...func(*Config)) *Provider {
	t.Helper()
	cfg := Config{
		AuthServerURL: "https://idp.example.com",
		Realm:         "demo",
		ClientID:      "app",
		ClientSecret:  "secret",
	}
	for _, m := range mutate {
		m(&cfg)
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestProvider_EndpointURLs(t *testing.T) {
	p := newTestProvider(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"authorization", p.BaseAuthorizationURL(), "https://idp.example.com/realms/demo/protocol/openid-connect/auth"},
		{"token", p.BaseAccessTokenURL(), "https://idp.example.com/realms/demo/protocol/openid-connect/token"},
		{"userinfo", p.ResourceOwnerDetailsURL(), "https://idp.example.com/realms/demo/protocol/openid-connect/userinfo"},
		{"registration", p.RegistrationURL(), "https://idp.example.com/realms/demo/protocol/openid-connect/registrations"},
		{"logout", p.LogoutURL(nil), "https://idp.example.com/realms/demo/protocol/openid-connect/logout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestProvider_EndpointURLs_TrailingSlashStripped(t *testing.T) {
	p := newTestProvider(t, func(c *Config) { c.AuthServerURL = "https://idp.example.com/" })
	want := "https://idp.example.com/realms/demo/protocol/openid-connect/token"
	if got := p.BaseAccessTokenURL(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProvider_LogoutURL_EncodesQuery(t *testing.T) {
	p := newTestProvider(t)
	got := p.LogoutURL(map[string]string{"redirect_uri": "https://app.example.com"})
	want := "https://idp.example.com/realms/demo/protocol/openid-connect/logout?redirect_uri=https%3A%2F%2Fapp.example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := newTestProvider(t)
	raw := p.AuthCodeURL("xyz", WithRedirectURI("https://app.example.com/cb"))

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Path != "/realms/demo/protocol/openid-connect/auth" {
		t.Errorf("unexpected path %q", u.Path)
	}
	q := u.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("expected response_type=code, got %q", q.Get("response_type"))
	}
	if q.Get("client_id") != "app" {
		t.Errorf("expected client_id=app, got %q", q.Get("client_id"))
	}
	if q.Get("state") != "xyz" {
		t.Errorf("expected state=xyz, got %q", q.Get("state"))
	}
	if q.Get("redirect_uri") != "https://app.example.com/cb" {
		t.Errorf("expected redirect_uri, got %q", q.Get("redirect_uri"))
	}
	if q.Get("scope") != "name email" {
		t.Errorf("expected default scopes, got %q", q.Get("scope"))
	}
}

func TestProvider_AuthCodeURL_ScopeOverrideAndExtras(t *testing.T) {
	p := newTestProvider(t)
	raw := p.AuthCodeURL("s", WithScopes("openid", "profile"), WithExtraParam("kc_idp_hint", "google"))

	u, _ := url.Parse(raw)
	q := u.Query()
	if q.Get("scope") != "openid profile" {
		t.Errorf("expected overridden scopes, got %q", q.Get("scope"))
	}
	if q.Get("kc_idp_hint") != "google" {
		t.Errorf("expected kc_idp_hint=google, got %q", q.Get("kc_idp_hint"))
	}
}

func TestProvider_AuthCodeURLDocker(t *testing.T) {
	p := newTestProvider(t)
	raw := p.AuthCodeURLDocker("http://localhost:8080", "st")
	if !strings.HasPrefix(raw, "http://localhost:8080/realms/demo/protocol/openid-connect/auth?") {
		t.Errorf("expected docker base URL, got %q", raw)
	}
	u, _ := url.Parse(raw)
	if u.Query().Get("client_id") != "app" {
		t.Error("docker URL should carry the same client parameters")
	}
}
