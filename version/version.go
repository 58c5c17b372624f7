package version

import "runtime/debug"

// Version is the library version, set at build time via -ldflags. When
// left at "dev", module build info is consulted as a fallback.
var Version = "dev"

// String returns the effective version string.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// UserAgent returns the User-Agent value sent on outgoing requests.
func UserAgent() string {
	return "keycloak-go/" + String()
}
