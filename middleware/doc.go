// Package middleware provides Gin middleware for applications that sit
// behind a Keycloak-protected API: bearer-token authentication backed by a
// keycloak.Provider, and request ID propagation.
package middleware
