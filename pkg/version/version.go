// Package version holds build-time version information for repoglyph.
package version

// Version is the semantic version of the binary, set via ldflags at build time.
var Version = "dev"

// Commit is the Git hash of the source the binary was built from.
var Commit = "<unknown>"

// Date is the build timestamp in RFC 3339 format.
var Date = "<unknown>"
