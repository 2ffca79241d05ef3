// Package web holds the embedded dashboard assets.
package web

import "embed"

// Templates contains the dashboard's html/template files.
//
//go:embed templates/layouts/*.html templates/pages/*.html
var Templates embed.FS
