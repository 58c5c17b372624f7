package oauth2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestEngine(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{ClientID: "app", ClientSecret: "secret"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RequiresClientID(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing client ID")
	}
}

func TestClient_Exchange_Success(t *testing.T) {
	var gotGrant, gotCode, gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotGrant = r.PostForm.Get("grant_type")
		gotCode = r.PostForm.Get("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":300,"scope":"name email"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	tok, err := c.Exchange(context.Background(), srv.URL, GrantAuthorizationCode, map[string]string{"code": "x"})
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if gotGrant != "authorization_code" {
		t.Errorf("expected grant_type=authorization_code, got %q", gotGrant)
	}
	if gotCode != "x" {
		t.Errorf("expected code=x, got %q", gotCode)
	}
	if gotUser != "app" || gotPass != "secret" {
		t.Errorf("expected basic client auth, got %q/%q", gotUser, gotPass)
	}
	if tok.AccessToken != "at" {
		t.Errorf("expected access token at, got %q", tok.AccessToken)
	}
	if tok.RefreshToken != "rt" {
		t.Errorf("expected refresh token rt, got %q", tok.RefreshToken)
	}
	if tok.ExpiresAt.IsZero() || tok.Expired() {
		t.Error("expected a live expiry on the token")
	}
	if len(tok.Scopes) != 2 || tok.Scopes[0] != "name" || tok.Scopes[1] != "email" {
		t.Errorf("expected scopes [name email], got %v", tok.Scopes)
	}
}

func TestClient_Exchange_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"bad code"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	_, err := c.Exchange(context.Background(), srv.URL, GrantAuthorizationCode, map[string]string{"code": "x"})
	provErr, ok := AsIdentityProviderError(err)
	if !ok {
		t.Fatalf("expected IdentityProviderError, got %v", err)
	}
	if provErr.Code != "invalid_grant" {
		t.Errorf("expected code invalid_grant, got %q", provErr.Code)
	}
	if provErr.Message != "invalid_grant: bad code" {
		t.Errorf("expected message 'invalid_grant: bad code', got %q", provErr.Message)
	}
	if provErr.Raw["error_description"] != "bad code" {
		t.Errorf("expected raw payload to be preserved, got %v", provErr.Raw)
	}
}

func TestClient_Exchange_ProviderErrorOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"unauthorized_client"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	_, err := c.Exchange(context.Background(), srv.URL, GrantRefreshToken, map[string]string{"refresh_token": "rt"})
	provErr, ok := AsIdentityProviderError(err)
	if !ok {
		t.Fatalf("expected IdentityProviderError, got %v", err)
	}
	if provErr.Message != "unauthorized_client" {
		t.Errorf("expected bare code message without description, got %q", provErr.Message)
	}
}

func TestClient_Exchange_RefreshTokenGrant(t *testing.T) {
	var gotGrant, gotRefresh string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotGrant = r.PostForm.Get("grant_type")
		gotRefresh = r.PostForm.Get("refresh_token")
		_, _ = w.Write([]byte(`{"access_token":"at2"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	tok, err := c.Exchange(context.Background(), srv.URL, GrantRefreshToken, map[string]string{"refresh_token": "old-rt"})
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if gotGrant != "refresh_token" || gotRefresh != "old-rt" {
		t.Errorf("expected refresh_token grant with old-rt, got %q/%q", gotGrant, gotRefresh)
	}
	if tok.Expired() {
		t.Error("token without expires_in should never expire client-side")
	}
}

func TestClient_Exchange_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	if _, err := c.Exchange(context.Background(), srv.URL, GrantAuthorizationCode, nil); err == nil {
		t.Error("expected error for response without access token")
	}
}

func TestClient_Exchange_NonJSONErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	_, err := c.Exchange(context.Background(), srv.URL, GrantAuthorizationCode, nil)
	if err == nil {
		t.Fatal("expected error for non-JSON 502 response")
	}
	if _, ok := AsIdentityProviderError(err); ok {
		t.Error("transport failure must not masquerade as a provider error")
	}
}

func TestClient_ResourceOwner_ReturnsRawBody(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"sub":"123","name":"Jane"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	body, err := c.ResourceOwner(context.Background(), srv.URL, &Token{AccessToken: "at"})
	if err != nil {
		t.Fatalf("ResourceOwner: %v", err)
	}
	if gotAuth != "Bearer at" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if string(body) != `{"sub":"123","name":"Jane"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestClient_ResourceOwner_SignedBodyPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/jwt")
		_, _ = w.Write([]byte("eyJhbGciOiJSUzI1NiJ9.payload.sig"))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	body, err := c.ResourceOwner(context.Background(), srv.URL, &Token{AccessToken: "at"})
	if err != nil {
		t.Fatalf("ResourceOwner: %v", err)
	}
	if string(body) != "eyJhbGciOiJSUzI1NiJ9.payload.sig" {
		t.Errorf("expected opaque JWT body, got %q", body)
	}
}

func TestClient_ResourceOwner_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_token","error_description":"Token verification failed"}`))
	}))
	defer srv.Close()

	c := newTestEngine(t)
	_, err := c.ResourceOwner(context.Background(), srv.URL, &Token{AccessToken: "bad"})
	provErr, ok := AsIdentityProviderError(err)
	if !ok {
		t.Fatalf("expected IdentityProviderError, got %v", err)
	}
	if provErr.Message != "invalid_token: Token verification failed" {
		t.Errorf("unexpected message %q", provErr.Message)
	}
}

func TestToken_Expired(t *testing.T) {
	live := &Token{ExpiresAt: time.Now().Add(time.Minute)}
	if live.Expired() {
		t.Error("token expiring in a minute should be live")
	}
	dead := &Token{ExpiresAt: time.Now().Add(-time.Minute)}
	if !dead.Expired() {
		t.Error("token expired a minute ago should be expired")
	}
}
