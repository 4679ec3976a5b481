package buildinfo

// These values are injected via ldflags by GoReleaser for release binaries.
// Local/dev builds leave them empty and fall back to module build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
