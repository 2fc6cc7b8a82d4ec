package articles

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/techhorizons/website/internal/linking"
	"github.com/techhorizons/website/internal/utils"
)

// HomeHandler serves the homepage: the headline blocks
// plus the most recent articles.
func (s *Service) HomeHandler(w http.ResponseWriter, r *http.Request) {

	// Get data from context
	data := utils.GetDataFromContext(r)

	main, err := s.artsRepo.GetMainHeadlines(r.Context())
	if err != nil {
		// The homepage still works without a headline block
		log.Printf("Was unable to fetch the main headlines on URI '%s': %v", r.RequestURI, err)
	}

	sub, err := s.artsRepo.GetSubHeadlines(r.Context())
	if err != nil {
		log.Printf("Was unable to fetch the sub headlines on URI '%s': %v", r.RequestURI, err)
	}

	recent, err := s.artsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Was unable to fetch the articles on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if len(recent) > s.config.PostsPerPage {
		recent = recent[:s.config.PostsPerPage]
	}

	data.MainHeadlines = main
	data.SubHeadlines = sub
	data.Articles = recent
	s.ui.RenderHTML(w, r, "home.html", data)
}

// SingleHandler serves a root level slug: an article when one
// exists, a CMS backed static page otherwise.
func (s *Service) SingleHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("slug")
	data := utils.GetDataFromContext(r)

	article, err := s.artsRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("Was unable to fetch the article on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	// Not an article, maybe it's a CMS page
	if article == nil {
		s.singlePage(w, r, slug)
		return
	}

	body, err := RenderBody(article.Body)
	if err != nil {
		log.Printf("Was unable to render the article on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	// Weave in the internal links, the article works without them
	linkable, err := s.artsRepo.GetLinkingArticles(r.Context())
	if err != nil {
		log.Printf("Was unable to fetch the linking articles on URI '%s': %v", r.RequestURI, err)
	} else {
		body = linking.InsertLinks(body, article.Slug, linkable)
	}

	data.Article = article
	data.ArticleHTML = template.HTML(body) // #nosec G203 -- sanitized above
	data.Title = article.Title
	data.Description = article.Description
	s.ui.RenderHTML(w, r, "article.html", data)
}

// Serve a CMS backed static page, or a 404 when the slug
// matches nothing at all
func (s *Service) singlePage(w http.ResponseWriter, r *http.Request, slug string) {

	page, err := s.pagesRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("Was unable to fetch the page on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if page == nil {
		http.NotFound(w, r)
		return
	}

	body, err := RenderBody(page.Body)
	if err != nil {
		log.Printf("Was unable to render the page on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	data := utils.GetDataFromContext(r)
	data.Page = page
	data.ArticleHTML = template.HTML(body) // #nosec G203 -- sanitized above
	data.Title = page.Title
	data.Description = page.Description
	s.ui.RenderHTML(w, r, "page.html", data)
}

// SearchHandler serves the search page
func (s *Service) SearchHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	data.SearchQuery = term
	data.Title = "Search"

	if term == "" {
		s.ui.RenderHTML(w, r, "search.html", data)
		return
	}

	results, err := s.artsRepo.Search(r.Context(), term)
	if err != nil {
		log.Printf("Was unable to search on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	data.Articles = results
	s.ui.RenderHTML(w, r, "search.html", data)
}
