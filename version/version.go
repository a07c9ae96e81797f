package version

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the bare version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with the commit it was built from
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}
