package middlewares

import (
	"slices"
	"strings"

	"github.com/techhorizons/website/internal/utils"
)

// redirectRule is one entry of the redirect table.
// The match function returns the redirect target and whether it applies.
type redirectRule struct {
	name  string
	match func(path string, legacy []string) (string, bool)
}

// The redirect table, evaluated top to bottom, first match wins.
// Every hit produces a permanent redirect.
var redirectRules = []redirectRule{
	{
		// The old root pagination from the WordPress era is gone
		name: "deprecated pagination prefix",
		match: func(path string, _ []string) (string, bool) {
			if path == "/page" || strings.HasPrefix(path, "/page/") {
				return "/", true
			}
			return "", false
		},
	},
	{
		// WordPress feed URLs, strip the marker
		name: "trailing feed marker",
		match: func(path string, _ []string) (string, bool) {
			if !strings.HasSuffix(path, "/feed") {
				return "", false
			}
			target := strings.TrimSuffix(path, "/feed")
			if target == "" {
				target = "/"
			}
			return target, true
		},
	},
	{
		// Legacy top level category names move under /categories/.
		// This also covers the old paginated form /{category}/page/{n},
		// since the category is the top level segment there too.
		name: "legacy category",
		match: func(path string, legacy []string) (string, bool) {
			segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
			if segment != "" && slices.Contains(legacy, segment) {
				return "/categories/" + segment, true
			}
			return "", false
		},
	},
	{
		// The unpaginated category URL is canonical, an explicit
		// first page redirects to it. A malformed double pagination
		// path loses exactly one trailing numeric segment.
		name: "category pagination collapse",
		match: func(path string, _ []string) (string, bool) {
			if !strings.HasPrefix(path, "/categories/") {
				return "", false
			}

			segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
			if len(segments) < 3 {
				return "", false
			}

			last := segments[len(segments)-1]
			previous := segments[len(segments)-2]

			if !utils.IsDigitsOnly(last) {
				return "", false
			}

			if last == "1" || utils.IsDigitsOnly(previous) {
				return "/" + strings.Join(segments[:len(segments)-1], "/"), true
			}

			return "", false
		},
	},
	{
		// Content moved from /articles/{slug} to root level paths.
		// The bare /articles/ listing is exempt.
		name: "articles prefix",
		match: func(path string, _ []string) (string, bool) {
			slug := strings.TrimPrefix(path, "/articles/")
			if slug == path || slug == "" {
				return "", false
			}
			return "/" + slug, true
		},
	},
}

// NormalizePath strips a single trailing slash, except for the root
func NormalizePath(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

// RedirectTarget evaluates the redirect table for a normalized path.
// It returns the target of the first matching rule, if any.
func RedirectTarget(path string, legacy []string) (string, bool) {
	for _, rule := range redirectRules {
		if target, ok := rule.match(path, legacy); ok {
			return target, true
		}
	}
	return "", false
}
