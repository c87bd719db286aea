// Package assets embeds the default sprite files.
package assets

import "embed"

// FS holds images/*.yaml, addressed by paths like "images/star.yaml".
//
//go:embed images/*.yaml
var FS embed.FS
