package categories

import (
	"log"
	"net/http"

	"github.com/techhorizons/website/internal/models"
	"github.com/techhorizons/website/internal/utils"
)

// ListingHandler serves a category listing, paginated.
// The unpaginated URL is page one, the redirect middleware
// already collapsed any explicit /1 suffix.
func (s *Service) ListingHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("category")
	page := utils.GetPageNum(r)
	data := utils.GetDataFromContext(r)

	category, err := s.catsRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("Was unable to fetch the category on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if category == nil {
		http.NotFound(w, r)
		return
	}

	all, err := s.artsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Was unable to fetch the articles on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	arts := filterByCategory(all, slug)

	// A page that holds no articles does not exist
	start := (page - 1) * s.config.PostsPerPage
	if page > 1 && start >= len(arts) {
		http.NotFound(w, r)
		return
	}

	end := min(start+s.config.PostsPerPage, len(arts))
	if start > len(arts) {
		start = len(arts)
	}

	data.Category = category
	data.Articles = arts[start:end]
	data.Pagination = models.CalculatePagination(page, len(arts), s.config.PostsPerPage)
	data.ListingPath = "/categories/" + category.Slug
	data.Title = category.Title
	data.Description = category.Description
	s.ui.RenderHTML(w, r, "category.html", data)
}

// TagHandler serves a tag listing, paginated the same way
// the category listings are
func (s *Service) TagHandler(w http.ResponseWriter, r *http.Request) {

	tagSlug := r.PathValue("tag")
	page := utils.GetPageNum(r)
	data := utils.GetDataFromContext(r)

	all, err := s.artsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Was unable to fetch the articles on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	title, arts := filterByTag(all, tagSlug)
	if len(arts) == 0 {
		http.NotFound(w, r)
		return
	}

	start := (page - 1) * s.config.PostsPerPage
	if page > 1 && start >= len(arts) {
		http.NotFound(w, r)
		return
	}

	end := min(start+s.config.PostsPerPage, len(arts))
	if start > len(arts) {
		start = len(arts)
	}

	data.Articles = arts[start:end]
	data.Pagination = models.CalculatePagination(page, len(arts), s.config.PostsPerPage)
	data.ListingPath = "/tags/" + tagSlug
	data.Title = title
	s.ui.RenderHTML(w, r, "tag.html", data)
}
