// Package web embeds the single-page frontend served at /.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// StaticFS returns the frontend files rooted at the static directory.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}
