// Package web holds the embedded templates and static files
package web

import "embed"

//go:embed all:templates all:static
var Files embed.FS
