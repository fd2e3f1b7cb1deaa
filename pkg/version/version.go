package version

// Set via ldflags at build time.
var (
	// Version is the semantic version of this build.
	Version = "0.1.0"

	// Revision is the VCS revision this build was produced from.
	Revision = "unknown"
)
