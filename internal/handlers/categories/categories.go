package categories

import (
	artsRepo "github.com/techhorizons/website/internal/repositories/articles"
	catsRepo "github.com/techhorizons/website/internal/repositories/categories"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
	"github.com/techhorizons/website/internal/ui"

	"github.com/gosimple/slug"
)

type Service struct {
	artsRepo *artsRepo.Repository
	catsRepo *catsRepo.Repository
	ui       ui.Service
	config   *config.Config
}

func New(
	artsRepo *artsRepo.Repository,
	catsRepo *catsRepo.Repository,
	ui ui.Service,
	config *config.Config,
) *Service {
	return &Service{
		artsRepo: artsRepo,
		catsRepo: catsRepo,
		ui:       ui,
		config:   config,
	}
}

// Whether the article belongs to the category directly
// or through one level of parent category
func inCategory(a *models.Article, catSlug string) bool {
	for _, cat := range a.Categories {
		if cat.Slug == catSlug {
			return true
		}
		if cat.Parent != nil && cat.Parent.Slug == catSlug {
			return true
		}
	}
	return false
}

// The articles of one category listing, fetch order preserved
func filterByCategory(arts models.Articles, catSlug string) models.Articles {
	var out models.Articles
	for i := range arts {
		if inCategory(&arts[i], catSlug) {
			out = append(out, arts[i])
		}
	}
	return out
}

// The articles of one tag listing. Tags are free-form strings
// in the CMS, the URL carries the slugified form.
func filterByTag(arts models.Articles, tagSlug string) (string, models.Articles) {

	var title string
	var out models.Articles

	for i := range arts {
		for _, tag := range arts[i].Tags {
			if slug.Make(tag) == tagSlug {
				if title == "" {
					title = tag
				}
				out = append(out, arts[i])
				break
			}
		}
	}

	return title, out
}
