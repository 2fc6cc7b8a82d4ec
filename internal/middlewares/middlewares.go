package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/ui"
	"github.com/techhorizons/website/internal/utils"

	"github.com/klauspost/compress/gzhttp"
)

type Service struct {
	ui     ui.Service
	config *config.Config
}

func New(ui ui.Service, config *config.Config) *Service {
	return &Service{
		ui:     ui,
		config: config,
	}
}

// Redirects normalizes the path and serves the legacy URL redirects.
// Redirect responses are cacheable for a year, the mappings are stable.
func (s *Service) Redirects(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files are never subject to URL rewriting
		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		path := NormalizePath(r.URL.Path)

		if target, ok := RedirectTarget(path, config.LegacyCategories); ok {
			w.Header().Set("Cache-Control", "public, max-age=31536000")
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}

		// A trailing slash alone also earns a permanent redirect
		if path != r.URL.Path {
			w.Header().Set("Cache-Control", "public, max-age=31536000")
			http.Redirect(w, r, path, http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Robots records the response, attaches the robots directive header
// for the page type and handles error responses. Unknown URLs redirect
// to the homepage unless their prefix is exempt, in which case they
// serve a proper 404 with a noindex directive.
func (s *Service) Robots(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files carry no robots policy
		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		// Create our custom response recorder
		recorder := NewResponseRecorder(w)

		// Defer the final response write until the function exits.
		// This ensures that either the original response or the error response is written.
		defer recorder.flush()

		// Call the next handler in the chain
		next.ServeHTTP(recorder, r)

		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Unknown URL, send the client to the homepage,
		// unless the path belongs to an exempt section
		if recorder.status == http.StatusNotFound && !s.exemptFromFallback(r.URL.Path) {
			recorder.body.Reset()
			http.Redirect(recorder, r, "/", http.StatusMovedPermanently)
			return
		}

		pageType := Classify(r.URL.Path)
		if recorder.status == http.StatusNotFound {
			pageType = PageNotFound
		}
		w.Header().Set("X-Robots-Tag", RobotsDirective(pageType))

		// We don't care if this is not an error
		if recorder.status < 400 {
			return
		}

		// This is an error
		// Clear any previously buffered body
		recorder.body.Reset()

		// Client probably does not want HTML, serve JSON error
		acceptHeader := r.Header.Get("Accept")
		if !strings.Contains(acceptHeader, "text/html") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			s.ui.JSONError(recorder, r, recorder.status)
			return
		}

		// Client prefers HTML, render the HTML error template
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		// Default data
		data := utils.GetDataFromContext(r)

		// Serve rich HTML error
		s.ui.HTMLError(recorder, r, recorder.status, data)
	})
}

// Check if a path is exempt from the 404 homepage fallback
func (s *Service) exemptFromFallback(path string) bool {
	for _, prefix := range s.config.NotFoundExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Generate the default template data and put it in context
func (s *Service) LoadData(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files don't render templates
		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		data := s.ui.NewData(w, r)
		ctx := context.WithValue(r.Context(), utils.DataContextKey, data)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LogRequests logs every page request with its duration.
// Static files are too noisy to log.
func (s *Service) LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.RequestURI, time.Since(start))
	})
}

// Close the body if POST request
func (s *Service) CloseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Close request body for POST methods to prevent resource leaks
		if r.Method == http.MethodPost {
			defer r.Body.Close()
		}
		next.ServeHTTP(w, r)
	})
}

// Do not crash the app on panic, serve 500 error to the client
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If in production recover panic
		if !s.config.Debug {
			defer func() {
				if err := recover(); err != nil {
					// Log the panic with stack trace
					log.Printf("Panic in %s %s: %#v", r.Method, r.URL.Path, err)

					// Return 500 to client
					http.Error(w, "Something went wrong", http.StatusInternalServerError)
				}
			}()
		}

		next.ServeHTTP(w, r)
	})
}

// Add security headers to request
func (s *Service) AddHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// XSS Protection
		w.Header().Set("X-XSS-Protection", "1; mode=block")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		// HSTS (HTTPS only)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")

		next.ServeHTTP(w, r)
	})
}

// Redirect WWW to non-WWW
func (s *Service) WWWRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check for 'www.' prefix
		if !strings.HasPrefix(r.Host, "www.") {
			next.ServeHTTP(w, r)
			return
		}

		// Clone the URL
		u := *r.URL

		// Modify the host
		u.Host = strings.TrimPrefix(r.Host, "www.")

		// Modify the scheme
		if !s.config.Debug {
			u.Scheme = "https"
		}

		// Redirect
		http.Redirect(w, r, u.String(), http.StatusMovedPermanently)
	})
}

// Compress provides gzip compression to non-static pages
func (s *Service) Compress(next http.Handler) http.Handler {

	// Create the gzip handler
	gzipHandler := gzhttp.GzipHandler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if request serves static files
		// Those are compressed on startup
		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		gzipHandler.ServeHTTP(w, r)
	})
}

// Chain middlewares that apply to all handlers
func (s *Service) ApplyToAll(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		// Apply middlewares in reverse order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
