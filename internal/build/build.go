// Package build holds build-time information.
package build

// Overwritten by linker flags on release builds.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
