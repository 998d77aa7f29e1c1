package assets

import "embed"

// StyleSheets holds the dock stylesheets selected from the engine flags.
//
//go:embed stylesheets/*.css
var StyleSheets embed.FS
