package web

import "embed"

// TemplateFiles holds the server-rendered HTML templates.
//
//go:embed templates/*.html
var TemplateFiles embed.FS
