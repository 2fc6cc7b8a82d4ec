package categories

import (
	"context"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/drivers/rdb"
	"github.com/techhorizons/website/internal/models"
)

type Repository struct {
	cms    *cms.Client
	rdb    *rdb.Service
	config *config.Config
}

func New(cms *cms.Client, rdb *rdb.Service, config *config.Config) *Repository {
	return &Repository{cms: cms, rdb: rdb, config: config}
}

// GetCategories fetches all valid categories
func (r *Repository) GetCategories(ctx context.Context) (models.Categories, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "categories:all", r.config.CacheTimeout,
		func() (models.Categories, error) {
			var categories models.Categories
			err := r.cms.Query(ctx, getCategoriesQuery, nil, &categories)
			return categories, err
		},
	)
}

// GetBySlug finds one category in the cached collection.
// A nil category means not found.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {

	categories, err := r.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		if category.Slug == slug {
			return &category, nil
		}
	}

	return nil, nil
}
