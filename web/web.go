// Package web embeds the search UI assets: the static landing page and the
// HTML templates the transport renders results with.
package web

import "embed"

// StaticFS holds the static landing page and assets.
//
//go:embed static
var StaticFS embed.FS

// TemplatesFS holds the HTML templates.
//
//go:embed templates
var TemplatesFS embed.FS
