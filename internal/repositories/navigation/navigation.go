package navigation

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

// rawNavItem is the navigation link the way the content store shapes it,
// before link kinds are resolved to hrefs
type rawNavItem struct {
	Label        string       `json:"label"`
	LinkType     string       `json:"link_type"`
	InternalLink string       `json:"internal_link"`
	CategorySlug string       `json:"category_slug"`
	ArticleSlug  string       `json:"article_slug"`
	ExternalLink string       `json:"external_link"`
	OpenInNewTab bool         `json:"open_in_new_tab"`
	Description  string       `json:"description"`
	Highlighted  bool         `json:"highlighted"`
	SubItems     []rawNavItem `json:"sub_items"`
}

type rawNavigation struct {
	Title string       `json:"title"`
	Items []rawNavItem `json:"items"`
}

// GetNavigation fetches the site navigation with link kinds resolved
func (r *Repository) GetNavigation(ctx context.Context) (models.Navigation, error) {
	return rdb.GetCachedData(
		ctx, r.rdb, "navigation", r.config.CacheTimeout,
		func() (models.Navigation, error) {

			var raw *rawNavigation
			if err := r.cms.Query(ctx, getNavigationQuery, nil, &raw); err != nil {
				return models.Navigation{}, err
			}

			// No navigation document is not an error
			if raw == nil {
				return models.Navigation{Title: "Navigation"}, nil
			}

			nav := models.Navigation{Title: raw.Title}
			for _, item := range raw.Items {
				nav.Items = append(nav.Items, resolveItem(item))
			}

			return nav, nil
		},
	)
}

// Resolve one navigation item and its sub items
func resolveItem(item rawNavItem) models.NavItem {

	target := "_self"
	if item.OpenInNewTab {
		target = "_blank"
	}

	resolved := models.NavItem{
		Text:        item.Label,
		Href:        resolveHref(item),
		Target:      target,
		Description: item.Description,
		Highlighted: item.Highlighted,
	}

	for _, sub := range item.SubItems {
		resolved.SubItems = append(resolved.SubItems, resolveItem(sub))
	}

	return resolved
}

// Resolve the href of a navigation item from its link kind
func resolveHref(item rawNavItem) string {
	switch item.LinkType {
	case "internal":
		if item.InternalLink != "" {
			return item.InternalLink
		}
		return "/"
	case "category":
		if item.CategorySlug != "" {
			return fmt.Sprintf("/categories/%s", item.CategorySlug)
		}
	case "article":
		if item.ArticleSlug != "" {
			return fmt.Sprintf("/%s", item.ArticleSlug)
		}
	case "external":
		if item.ExternalLink != "" {
			return item.ExternalLink
		}
	}
	return "#"
}
