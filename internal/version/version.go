// Package version holds build information set through -ldflags.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/neox5/statmeta/internal/version.version=v1.2.3".
var version = ""

// String returns the build version.
func String() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
