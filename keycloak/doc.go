// Package keycloak is an OAuth2/OIDC client adapter for Keycloak-style
// identity providers.
//
// It derives realm-scoped endpoint URLs, drives the authorization-code and
// refresh-token grant flows through the oauth2 engine, and resolves
// resource-owner responses: plain JSON payloads pass through untouched,
// while signed token responses are verified against the configured public
// key and signature algorithm before their claims are exposed.
//
// # Usage
//
//	p, err := keycloak.New(keycloak.Config{
//	    AuthServerURL: "https://idp.example.com",
//	    Realm:         "demo",
//	    ClientID:      "app",
//	    ClientSecret:  "secret",
//	})
//
//	tok, err := p.AuthByCode(ctx, code)
//	owner, err := p.GetResourceOwner(ctx, tok)
package keycloak
