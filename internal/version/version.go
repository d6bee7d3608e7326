// Package version provides version information.
package version

// Version is set at build time via -ldflags "-X github.com/calliglyph/calliglyph/internal/version.Version=<value>"
// The default is a development placeholder.
var Version = "v0.0.0-dev"
