package textops

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the released version of textops.
var Version = strings.TrimSpace(rawVersion)
