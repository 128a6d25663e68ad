// Package version holds build metadata for the numkit CLI.
// The variables are overridden at build time via -ldflags.
package version

import "github.com/fatih/color"

var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	labelColor   = color.New(color.Faint)
)

// Banner returns "numkit <version>" with terminal colors when color output
// is enabled (see color.NoColor).
func Banner() string {
	return nameColor.Sprint("numkit") + " " + versionColor.Sprint(Version)
}

// Label colors a metadata label such as "commit:".
func Label(s string) string { return labelColor.Sprint(s) }

// ShortCommit returns the first 7 characters of GitCommit.
func ShortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}
