// Package version exposes the library's build version for diagnostics
// and the User-Agent header.
//
// Version is overridable at build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/keycloak/version.Version=1.2.0"
package version
