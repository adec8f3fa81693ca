// Package web embeds the list view template and the static assets it loads.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

// IndexTemplate is the name the list view is rendered under.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static returns the asset tree rooted at static/, e.g. "css/style.css".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // static/ is embedded above; Sub only fails on an invalid path
	}
	return sub
}
