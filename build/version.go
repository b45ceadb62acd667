package build

import "fmt"

// Commit stores the current git tag and commit hash, set by the linker at
// build time via -ldflags.
var Commit string

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// Version returns the application version as a properly formed string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
}
