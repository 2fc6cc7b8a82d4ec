package sitemaps

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/techhorizons/website/internal/models"

	"github.com/gosimple/slug"
)

// Fixed priorities for category and tag listing pages
const (
	categoryPriority   = 0.8
	paginationPriority = 0.6
)

// One fixed entry of the static pages sitemap
type staticPage struct {
	path       string
	priority   string
	changeFreq string
}

// The static pages with hardcoded metadata, the homepage
// matters most and the legal pages least
var staticPages = []staticPage{
	{"/", "1.0", "hourly"},
	{"/about", "0.6", "monthly"},
	{"/contact", "0.6", "monthly"},
	{"/search", "0.5", "weekly"},
	{"/accessibility", "0.3", "yearly"},
	{"/privacy", "0.3", "yearly"},
	{"/cookie-policy", "0.3", "yearly"},
}

// indexable re-validates the fetch boundary guarantees and sorts
// the articles by publish date, newest first. The sort is stable,
// ties keep their fetch order.
func indexable(arts models.Articles) models.Articles {

	var out models.Articles
	for _, a := range arts {
		if a.IsDraft || a.Slug == "" || a.PublishedAt == nil {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})

	return out
}

// How old an article is, in whole days
func ageInDays(now time.Time, published time.Time) int {
	return int(now.Sub(published).Hours() / 24)
}

// The starting priority of an article entry before the chunk decay
func basePriority(days int) float64 {
	switch {
	case days <= 7:
		return 1.0
	case days <= 30:
		return 0.9
	case days <= 180:
		return 0.8
	default:
		return 0.7
	}
}

// How often a crawler should expect an article to change
func changeFreq(days int) string {
	switch {
	case days <= 30:
		return "daily"
	case days <= 180:
		return "weekly"
	default:
		return "monthly"
	}
}

// The sitemap protocol wants one decimal place
func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// buildArticleChunk builds the urlset of one article sitemap chunk.
// Priority decays with the age of the article and with how deep into
// the chunked set it falls, but never below 0.5.
func (s *Service) buildArticleChunk(chunk models.Articles, chunkIndex int, now time.Time) *models.URLSet {

	doc := models.NewURLSet()
	for _, a := range chunk {
		days := ageInDays(now, *a.PublishedAt)
		priority := max(basePriority(days)-0.1*float64(chunkIndex), 0.5)

		doc.URLs = append(doc.URLs, models.SitemapURL{
			Loc:        s.config.SiteURL() + "/" + a.Slug,
			LastMod:    a.LastModified().Format(time.RFC3339),
			ChangeFreq: changeFreq(days),
			Priority:   formatPriority(priority),
		})
	}

	return doc
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

// How many articles the category listing holds
func countInCategory(arts models.Articles, catSlug string) int {
	var count int
	for i := range arts {
		if inCategory(&arts[i], catSlug) {
			count++
		}
	}
	return count
}

// buildCategorySitemap builds one entry per category listing page plus
// entries for the pagination pages that actually contain articles.
func (s *Service) buildCategorySitemap(cats models.Categories, arts models.Articles) *models.URLSet {

	doc := models.NewURLSet()
	for _, cat := range cats {
		if cat.Slug == "" {
			continue
		}

		doc.URLs = append(doc.URLs, models.SitemapURL{
			Loc:        fmt.Sprintf("%s/categories/%s", s.config.SiteURL(), cat.Slug),
			ChangeFreq: "weekly",
			Priority:   formatPriority(categoryPriority),
		})

		count := countInCategory(arts, cat.Slug)
		totalPages := int(math.Ceil(float64(count) / float64(s.config.PostsPerPage)))

		// Never emit a pagination page that would be empty
		for page := 2; page <= totalPages; page++ {
			doc.URLs = append(doc.URLs, models.SitemapURL{
				Loc:        fmt.Sprintf("%s/categories/%s/%d", s.config.SiteURL(), cat.Slug, page),
				ChangeFreq: "weekly",
				Priority:   formatPriority(paginationPriority),
			})
		}
	}

	return doc
}

// buildTagsSitemap builds one entry per tag that owns at least one
// article. Busier tags rank higher and get a few pagination entries.
func (s *Service) buildTagsSitemap(arts models.Articles) *models.URLSet {

	counts := make(map[string]int)
	for i := range arts {
		for _, tag := range arts[i].Tags {
			if tag != "" {
				counts[tag]++
			}
		}
	}

	// Deterministic output order
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	doc := models.NewURLSet()
	for _, tag := range tags {

		count := counts[tag]
		var base float64
		switch {
		case count >= 10:
			base = 0.8
		case count >= 5:
			base = 0.7
		default:
			base = 0.6
		}

		tagPath := fmt.Sprintf("%s/tags/%s", s.config.SiteURL(), slug.Make(tag))
		doc.URLs = append(doc.URLs, models.SitemapURL{
			Loc:        tagPath,
			ChangeFreq: "weekly",
			Priority:   formatPriority(base),
		})

		// A handful of pagination entries for the busy tags
		totalPages := int(math.Ceil(float64(count) / float64(s.config.PostsPerPage)))
		for page := 2; page <= min(5, totalPages); page++ {
			doc.URLs = append(doc.URLs, models.SitemapURL{
				Loc:        fmt.Sprintf("%s/%d", tagPath, page),
				ChangeFreq: "weekly",
				Priority:   formatPriority(max(0.4, base-0.2)),
			})
		}
	}

	return doc
}

// buildPagesSitemap builds the fixed static pages document
func (s *Service) buildPagesSitemap() *models.URLSet {

	doc := models.NewURLSet()
	for _, page := range staticPages {
		doc.URLs = append(doc.URLs, models.SitemapURL{
			Loc:        s.config.SiteURL() + page.path,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	return doc
}

// buildIndex references every document the site emits. An article
// chunk inherits the lastmod of its most recently touched article.
func (s *Service) buildIndex(chunks [][]models.Article, now time.Time) *models.SitemapIndex {

	index := models.NewSitemapIndex()
	for i, chunk := range chunks {

		var lastMod time.Time
		for j := range chunk {
			if m := chunk[j].LastModified(); m != nil && m.After(lastMod) {
				lastMod = *m
			}
		}

		ref := models.SitemapRef{
			Loc: fmt.Sprintf("%s/sitemap-articles-%d.xml", s.config.SiteURL(), i+1),
		}
		if !lastMod.IsZero() {
			ref.LastMod = lastMod.Format(time.RFC3339)
		}

		index.Sitemaps = append(index.Sitemaps, ref)
	}

	for _, name := range []string{
		"sitemap-categories.xml",
		"sitemap-tags.xml",
		"sitemap-pages.xml",
	} {
		index.Sitemaps = append(index.Sitemaps, models.SitemapRef{
			Loc:     fmt.Sprintf("%s/%s", s.config.SiteURL(), name),
			LastMod: now.Format(time.RFC3339),
		})
	}

	return index
}
