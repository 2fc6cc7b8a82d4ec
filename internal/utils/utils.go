package utils

import (
	"fmt"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/techhorizons/website/internal/models"
)

type contextKey struct {
	name string
}

// Universal context key to get the page data from context
var DataContextKey = contextKey{name: "data"}

// Favicons used in the website
var RootFavicons = []string{
	"/android-chrome-192x192.png",
	"/android-chrome-512x512.png",
	"/apple-touch-icon.png",
	"/favicon-16x16.png",
	"/favicon-32x32.png",
	"/favicon.ico",
	"/site.webmanifest",
}

// Get the page data from context, nil if not there
func GetDataFromContext(r *http.Request) *models.TemplateData {
	data, _ := r.Context().Value(DataContextKey).(*models.TemplateData)
	return data
}

// Validates a path
func ValidateFilePath(p string) error {
	if p == "" {
		return fmt.Errorf("no path supplied")
	}

	cleaned := path.Clean(p)
	if cleaned != p {
		return fmt.Errorf("invalid path '%s'", p)
	}

	return nil
}

// Get page number from the last path segment.
// Defaults to 1 if missing or invalid.
func GetPageNum(r *http.Request) (page int) {
	pageStr := r.PathValue("page")
	if pageInt, err := strconv.Atoi(pageStr); err == nil {
		page = pageInt
	}

	return max(page, 1)
}

// Check if a string consists of digits only
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Check if this is a static file
func IsStatic(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/static/") ||
		slices.Contains(RootFavicons, r.URL.Path)
}

// HttpError provides shorter handling of http error
func HttpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
