package version

// Version is the current promptgen version.
// It is overridden at build time via -ldflags for tagged releases.
var Version = "0.1.0"
