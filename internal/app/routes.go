package app

import (
	"log"
	"net/http"

	"github.com/techhorizons/website/internal/handlers/sitemaps"
	"github.com/techhorizons/website/internal/utils"
)

// RegisterRoutes registers routes and
// assigns custom handler to the HTTP server
func (a *App) RegisterRoutes() *App {
	mux := http.NewServeMux()

	// Home
	mux.HandleFunc("GET /{$}", a.articles.HomeHandler)

	// Categories
	mux.HandleFunc("GET /categories/{category}", a.cats.ListingHandler)
	mux.HandleFunc("GET /categories/{category}/{page}", a.cats.ListingHandler)

	// Tags
	mux.HandleFunc("GET /tags/{tag}", a.cats.TagHandler)
	mux.HandleFunc("GET /tags/{tag}/{page}", a.cats.TagHandler)

	// Search
	mux.HandleFunc("GET /search", a.articles.SearchHandler)

	// Sitemaps and feeds
	mux.HandleFunc("GET /sitemap-index.xml", a.sitemaps.IndexHandler)
	mux.HandleFunc("GET /sitemap-categories.xml", a.sitemaps.CategoriesHandler)
	mux.HandleFunc("GET /sitemap-tags.xml", a.sitemaps.TagsHandler)
	mux.HandleFunc("GET /sitemap-pages.xml", a.sitemaps.PagesHandler)
	mux.HandleFunc("GET /news-sitemap.xml", a.sitemaps.NewsHandler)
	mux.HandleFunc("GET /rss.xml", a.feeds.FeedHandler)

	// The rest
	mux.HandleFunc("GET /health/{$}", a.misc.HealthHandler)
	mux.HandleFunc("GET /static/", a.misc.StaticHandler)
	mux.HandleFunc("GET /robots.txt", a.misc.TextHandler)

	// Register favicons serving from root
	for _, favicon := range utils.RootFavicons {
		mux.HandleFunc("GET "+favicon, a.misc.StaticHandler)
	}

	// Simple health check
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Robots-Tag", "noindex")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Printf("Failed to write response on '%s'; %v", r.URL.Path, err)
		}
	})

	// Root level slugs: articles, CMS pages
	// and the chunked article sitemaps
	mux.HandleFunc("GET /{slug}", a.rootHandler)

	// Chain middlewares that apply to all requests.
	// The order is important.
	// Use this custom handler as HTTP server handler
	a.server.Handler = a.mw.ApplyToAll(
		a.mw.RecoverPanic,
		a.mw.LogRequests,
		a.mw.CloseBody,
		a.mw.WWWRedirect,
		a.mw.Redirects,
		a.mw.LoadData,
		a.mw.AddHeaders,
		a.mw.Compress,
		a.mw.Robots,
	)(mux)

	return a
}

// A root level slug serves either one of the chunked article
// sitemaps or a single article / CMS page
func (a *App) rootHandler(w http.ResponseWriter, r *http.Request) {
	if sitemaps.IsArticleChunkPath(r.URL.Path) {
		a.sitemaps.ArticlesChunkHandler(w, r)
		return
	}
	a.articles.SingleHandler(w, r)
}
