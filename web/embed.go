// Package web embeds the HTML templates and static assets served by the
// page handlers.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static templates
var assets embed.FS

// StaticFS returns the embedded static assets (stylesheet, grid script).
func StaticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}

// TemplatesFS returns the embedded page templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		log.Fatalf("failed to create templates sub-filesystem: %v", err)
	}
	return sub
}
