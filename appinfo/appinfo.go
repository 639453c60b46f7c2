// Package appinfo holds the program name/version, consulted by both the
// config package (logger naming) and the state package (CLI metadata)
// without making either depend on the other.
package appinfo

// name and version back logger naming and the CLI's own Name/Version
// fields; the teacher's own "misc" helper package (GetAppName/GetVersion/
// GetGitHash, stamped at link time via -ldflags) did not come along with
// the retrieved files, so these are plain constants instead of
// link-time-stamped vars.
const (
	name    = "screenplaydoc"
	version = "dev"
)

// Name returns the program name used for logger naming and the CLI's Name field.
func Name() string { return name }

// Version returns the program version string.
func Version() string { return version }
