package scribe

import _ "embed"

// Version is the release version of scribe, read from the VERSION file.
//
//go:embed VERSION
var Version string
