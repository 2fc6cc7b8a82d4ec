package articles

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown converter for the article and page bodies
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// The CMS bodies are authored in-house but still pass through
// a sanitizer before they reach a template as trusted HTML
var sanitizer = bluemonday.UGCPolicy()

// RenderBody converts a markdown body to sanitized HTML
func RenderBody(body string) (string, error) {

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", err
	}

	return sanitizer.Sanitize(buf.String()), nil
}
