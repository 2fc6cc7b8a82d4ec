package models

import (
	"html/template"
	"time"
)

// TemplateMap holds the parsed templates keyed by file name
type TemplateMap map[string]*template.Template

// FileInfo holds an in-memory file and its serving metadata
type FileInfo struct {
	MediaType  string
	ModTime    time.Time
	Etag       string
	Bytes      []byte
	Compressed []byte
}

// StaticFiles holds the processed static files keyed by URL path
type StaticFiles map[string]*FileInfo

// TextFiles holds the generated plain text files keyed by URL path
type TextFiles map[string]*FileInfo
