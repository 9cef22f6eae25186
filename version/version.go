package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the version string, preferring compile-time version if available
func GetVersion() string {
	// Prefer compile-time version if set
	if Version != "dev" && Version != "" {
		return Version
	}

	// Fall back to build info
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "development"
}

// GetFullVersion returns a formatted version string with commit and build date
func GetFullVersion() string {
	commit := getCommit()
	if commit != "unknown" && len(commit) > 7 {
		shortCommit := commit[:7]
		if date := getBuildDate(); date != "unknown" {
			return fmt.Sprintf("%s (%s, built %s)", GetVersion(), shortCommit, date)
		}
		return fmt.Sprintf("%s (%s)", GetVersion(), shortCommit)
	}
	return GetVersion()
}

func getCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

func getBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				return setting.Value
			}
		}
	}
	return "unknown"
}
