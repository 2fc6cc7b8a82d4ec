package middlewares

import (
	"strings"

	"github.com/techhorizons/website/internal/utils"
)

// PageType is the classification of a request path,
// used to pick the robots indexing directive.
type PageType string

const (
	PageHomepage   PageType = "homepage"
	PageArticle    PageType = "article"
	PageCategory   PageType = "category"
	PagePagination PageType = "pagination"
	PageStatic     PageType = "static"
	PagePrivate    PageType = "private"
	PageNotFound   PageType = "notfound"
	PageDefault    PageType = "default"
)

// One fixed robots directive per page type
var robotsDirectives = map[PageType]string{
	PageHomepage:   "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1",
	PageArticle:    "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1",
	PageCategory:   "index, follow, max-image-preview:standard, max-snippet:300",
	PagePagination: "index, follow, max-image-preview:none, max-snippet:150",
	PageStatic:     "index, follow, max-image-preview:standard, max-snippet:200",
	PagePrivate:    "noindex, nofollow",
	PageNotFound:   "noindex, nofollow",
	PageDefault:    "index, follow, max-image-preview:standard",
}

// Markers of the fixed static pages
var staticMarkers = []string{
	"/about",
	"/contact",
	"/accessibility",
	"/cookie",
	"/privacy",
	"/search",
}

// Markers of private, never indexed paths
var privateMarkers = []string{
	"/admin",
	"/api",
	"/preview",
	"/_",
}

// classification is one entry of the classifier table
type classification struct {
	pageType PageType
	match    func(path string) bool
}

// The classifier table, evaluated top to bottom, first match wins
var classifications = []classification{
	{PageHomepage, func(path string) bool {
		return path == "/"
	}},
	{PagePagination, func(path string) bool {
		return strings.Contains(path, "/categories/") && endsNumeric(path)
	}},
	{PageCategory, func(path string) bool {
		return strings.Contains(path, "/categories/")
	}},
	{PagePagination, func(path string) bool {
		return endsNumeric(path)
	}},
	{PagePrivate, func(path string) bool {
		return containsAny(path, privateMarkers)
	}},
	{PageStatic, func(path string) bool {
		return containsAny(path, staticMarkers)
	}},
	{PageArticle, func(path string) bool {
		// Root level content slugs are the residual class
		return strings.HasPrefix(path, "/")
	}},
}

// Classify maps a request path to exactly one page type.
// Unparseable shapes fall through to the default type, never panic.
func Classify(path string) PageType {
	for _, c := range classifications {
		if c.match(path) {
			return c.pageType
		}
	}
	return PageDefault
}

// RobotsDirective returns the robots directive for a page type
func RobotsDirective(pageType PageType) string {
	if directive, ok := robotsDirectives[pageType]; ok {
		return directive
	}
	return robotsDirectives[PageDefault]
}

// Check if the last path segment is numeric
func endsNumeric(path string) bool {
	segments := strings.Split(path, "/")
	return utils.IsDigitsOnly(segments[len(segments)-1])
}

// Check if the path contains any of the markers
func containsAny(path string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}
