// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/itsmostafa/svgflat/internal/version.Version=v1.0.0"
//
// Binaries installed with `go install` carry their module version instead.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Resolved returns Version, or the main module version embedded by the Go
// toolchain when no version was linked in.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// String returns the resolved version with its commit and build date.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Resolved(), Commit, BuildDate)
}
