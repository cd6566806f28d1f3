// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the VCS revision the binary was built from, set by linker flags.
var Commit = "none"

// Date is the build timestamp, set by linker flags.
var Date = "unknown"
