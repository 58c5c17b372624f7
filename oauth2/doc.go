// Package oauth2 implements a minimal OAuth2 grant-exchange engine.
//
// The Client posts form-encoded grant requests to a token endpoint using
// HTTP basic client authentication and fetches resource-owner details with
// a bearer credential. Provider error payloads (a non-empty "error" field)
// are surfaced as *IdentityProviderError on every token-endpoint and
// userinfo response.
//
// The engine is provider-agnostic: endpoint URLs are supplied per call.
// Provider adapters (see the keycloak package) own URL construction and
// response interpretation.
package oauth2
