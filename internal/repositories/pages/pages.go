package pages

import (
	"context"
	"fmt"

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

// GetPages fetches all published static pages
func (r *Repository) GetPages(ctx context.Context) (models.Pages, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "pages:all", r.config.CacheTimeout,
		func() (models.Pages, error) {
			var pages models.Pages
			err := r.cms.Query(ctx, getPagesQuery, nil, &pages)
			return pages, err
		},
	)
}

// GetBySlug fetches a single page with its body.
// A nil page means not found.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {

	pages, err := rdb.GetCachedData(
		ctx, r.rdb, fmt.Sprintf("page:%s", slug), r.config.CacheTimeout,
		func() (models.Pages, error) {
			var page *models.Page
			params := map[string]any{"slug": slug}
			if err := r.cms.Query(ctx, getPageBySlugQuery, params, &page); err != nil {
				return nil, err
			}
			if page == nil {
				return models.Pages{}, nil
			}
			return models.Pages{*page}, nil
		},
	)

	if err != nil || len(pages) == 0 {
		return nil, err
	}

	return &pages[0], nil
}
