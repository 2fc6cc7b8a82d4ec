package articles

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

// GetAll fetches every published article, newest first
func (r *Repository) GetAll(ctx context.Context) (models.Articles, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "articles:all", r.config.CacheTimeout,
		func() (models.Articles, error) {
			var articles models.Articles
			err := r.cms.Query(ctx, getAllArticlesQuery, nil, &articles)
			return articles, err
		},
	)
}

// GetBySlug fetches a single article, body included
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {

	articles, err := rdb.GetCachedData(
		ctx, r.rdb, fmt.Sprintf("article:%s", slug), r.config.CacheTimeout,
		func() (models.Articles, error) {
			var article *models.Article
			params := map[string]any{"slug": slug}
			if err := r.cms.Query(ctx, getArticleBySlugQuery, params, &article); err != nil {
				return nil, err
			}
			if article == nil {
				return models.Articles{}, nil
			}
			return models.Articles{*article}, nil
		},
	)

	if err != nil || len(articles) == 0 {
		return nil, err
	}

	return &articles[0], nil
}

// GetMainHeadlines fetches the articles flagged as main headlines
func (r *Repository) GetMainHeadlines(ctx context.Context) (models.Articles, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "articles:headlines:main", r.config.CacheTimeout,
		func() (models.Articles, error) {
			var articles models.Articles
			err := r.cms.Query(ctx, getMainHeadlinesQuery, nil, &articles)
			return articles, err
		},
	)
}

// GetSubHeadlines fetches the articles flagged as sub headlines
func (r *Repository) GetSubHeadlines(ctx context.Context) (models.Articles, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "articles:headlines:sub", r.config.CacheTimeout,
		func() (models.Articles, error) {
			var articles models.Articles
			err := r.cms.Query(ctx, getSubHeadlinesQuery, nil, &articles)
			return articles, err
		},
	)
}

// Search runs a match query against titles and descriptions.
// Search results are not cached.
func (r *Repository) Search(ctx context.Context, term string) (models.Articles, error) {
	var articles models.Articles
	params := map[string]any{"term": term + "*"}
	err := r.cms.Query(ctx, searchArticlesQuery, params, &articles)
	return articles, err
}

// GetLinkingArticles fetches the articles that own a unique linking keyword
func (r *Repository) GetLinkingArticles(ctx context.Context) (models.Articles, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "articles:linking", r.config.CacheTimeout,
		func() (models.Articles, error) {
			var articles models.Articles
			err := r.cms.Query(ctx, getLinkingArticlesQuery, nil, &articles)
			return articles, err
		},
	)
}
