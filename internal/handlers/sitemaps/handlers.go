package sitemaps

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/techhorizons/website/internal/models"
	"github.com/techhorizons/website/internal/utils"
)

// Cache lifetimes per document kind
const (
	indexMaxAge      = time.Hour
	articlesMaxAge   = time.Hour
	categoriesMaxAge = 24 * time.Hour
	tagsMaxAge       = 24 * time.Hour
	pagesMaxAge      = 7 * 24 * time.Hour
	newsMaxAge       = 30 * time.Minute
)

var validArticlesChunk = regexp.MustCompile(`^/sitemap-articles-(\d+)\.xml$`)

// IsArticleChunkPath reports whether the path addresses
// one of the chunked article sitemaps
func IsArticleChunkPath(path string) bool {
	return validArticlesChunk.MatchString(path)
}

// IndexHandler serves the sitemap index
func (s *Service) IndexHandler(w http.ResponseWriter, r *http.Request) {
	arts := s.fetchArticles(r)
	chunks := utils.Chunk(indexable(arts), s.config.ArticlesPerSitemap)
	s.writeXML(w, r, s.buildIndex(chunks, time.Now()), indexMaxAge)
}

// ArticlesChunkHandler serves one chunk of the article sitemaps
func (s *Service) ArticlesChunkHandler(w http.ResponseWriter, r *http.Request) {

	matches := validArticlesChunk.FindStringSubmatch(r.URL.Path)
	if len(matches) < 2 {
		http.NotFound(w, r)
		return
	}

	// The URL numbering is one based
	n, err := strconv.Atoi(matches[1])
	if err != nil || n < 1 {
		http.NotFound(w, r)
		return
	}

	arts := s.fetchArticles(r)
	chunks := utils.Chunk(indexable(arts), s.config.ArticlesPerSitemap)

	// An out of range chunk is an unknown URL, unless there are no
	// articles at all, in which case the first chunk stays valid
	// and empty so crawlers never see a broken feed.
	if n > len(chunks) {
		if n == 1 {
			s.writeXML(w, r, models.NewURLSet(), articlesMaxAge)
			return
		}
		http.NotFound(w, r)
		return
	}

	s.writeXML(w, r, s.buildArticleChunk(chunks[n-1], n-1, time.Now()), articlesMaxAge)
}

// CategoriesHandler serves the category listings sitemap
func (s *Service) CategoriesHandler(w http.ResponseWriter, r *http.Request) {

	cats, err := s.catsRepo.GetCategories(r.Context())
	if err != nil {
		log.Printf("Failed to fetch the categories on URI '%s': %v", r.RequestURI, err)
	}

	arts := s.fetchArticles(r)
	s.writeXML(w, r, s.buildCategorySitemap(cats, indexable(arts)), categoriesMaxAge)
}

// TagsHandler serves the tag listings sitemap
func (s *Service) TagsHandler(w http.ResponseWriter, r *http.Request) {
	arts := s.fetchArticles(r)
	s.writeXML(w, r, s.buildTagsSitemap(indexable(arts)), tagsMaxAge)
}

// PagesHandler serves the static pages sitemap
func (s *Service) PagesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeXML(w, r, s.buildPagesSitemap(), pagesMaxAge)
}

// NewsHandler serves the Google News flavored sitemap
func (s *Service) NewsHandler(w http.ResponseWriter, r *http.Request) {
	arts := s.fetchArticles(r)
	s.writeXML(w, r, s.buildNewsSitemap(indexable(arts), time.Now()), newsMaxAge)
}

// Fetch all articles; a fetch failure degrades to an empty set,
// crawlers get a valid document either way
func (s *Service) fetchArticles(r *http.Request) models.Articles {
	arts, err := s.artsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to fetch the articles on URI '%s': %v", r.RequestURI, err)
		return nil
	}
	return arts
}

// Write the XML document to the response with the proper headers
func (s *Service) writeXML(w http.ResponseWriter, r *http.Request, doc any, maxAge time.Duration) {

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))

	if _, err := io.WriteString(w, xml.Header); err != nil {
		log.Printf("Failed to write the XML header on URI '%s': %v", r.RequestURI, err)
		return
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to encode the XML document on URI '%s': %v", r.RequestURI, err)
	}
}
