package version

// Version contains the application version information.
// Set via build-time ldflags in releases:
// go build -ldflags "-X blogforge/internal/version.Version=v1.0.0".
var Version = "dev"

// String returns the version for CLI display.
func String() string {
	return Version
}
