package pdfmerge

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"

	// commit is the short git hash of the build
	commit = "unknown"

	// buildTime is the RFC3339 build timestamp
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("pdfmerge %s\n  Version:    %s\n  Commit:     %s\n  Build Time: %s\n  Go Version: %s\n",
		version, Version(), Commit(), BuildTime(), GoVersion())
}
