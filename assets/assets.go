// Package assets embeds the stylesheet and browser scripts that drive the
// sidebar, tabs, widgets, password toggles and the related-object modal.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// Script paths relative to the static root, in load order.
var Scripts = []string{
	"js/dashub.js",
	"js/tabs.js",
	"js/widgets.js",
	"js/password.js",
	"js/related-modal.js",
}

// Stylesheet is the theme stylesheet path relative to the static root.
const Stylesheet = "css/dashub.css"

// Avatar is the placeholder avatar path relative to the static root.
const Avatar = "img/avatar.svg"

// FS returns the static tree rooted at "static".
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

// Handler serves the embedded files. Mount it under the static URL with the
// prefix stripped.
func Handler() http.Handler {
	return http.FileServerFS(FS())
}

// ReadFile returns one embedded file.
func ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(FS(), name)
}
