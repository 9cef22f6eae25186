// Package version provides version information and build metadata for tsv-utils.
//
// Version, Commit, and Date can be injected at build time with -ldflags;
// when they are left at their defaults the package falls back to the
// runtime build info from debug.ReadBuildInfo(), so release builds and
// plain `go install` builds both report something useful.
package version
