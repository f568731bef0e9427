// Package messages embeds the default application error catalog.
//
// Files are named <resource>.<language>.toml and hold one
// KEY = "format" entry per message key.
package messages

import "embed"

//go:embed *.toml
var FS embed.FS
