// Package cmd holds build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/thoreinstein/namecheck/cmd.Version=v1.2.0"
package cmd

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git SHA the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
