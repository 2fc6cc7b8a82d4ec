package sitemaps

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/techhorizons/website/internal/models"
)

const (
	// Titles under this length are too thin for the news index
	minNewsTitleLength = 10
	// At most this many keywords are attached per entry
	maxNewsKeywords = 10
)

// Articles tagged with these are evergreen content, not news
var nonNewsKeywords = []string{
	"tutorial",
	"guide",
	"review",
	"comparison",
	"how-to",
	"tip",
	"advice",
	"manual",
}

// Constant keywords attached to every news entry
var fillerKeywords = []string{
	"technologie",
	"high-tech",
	"innovation",
}

// buildNewsSitemap builds the Google News flavored sitemap from
// articles published inside the rolling news window. The input is
// expected sorted newest first. An empty window yields a valid
// empty urlset.
func (s *Service) buildNewsSitemap(arts models.Articles, now time.Time) *models.NewsURLSet {

	doc := models.NewNewsURLSet()
	cutoff := now.Add(-s.config.NewsWindow)

	for i := range arts {
		a := &arts[i]

		// Sorted newest first, everything past the cutoff is older
		if a.PublishedAt.Before(cutoff) {
			break
		}

		if utf8.RuneCountInString(a.Title) < minNewsTitleLength {
			continue
		}

		if isEvergreen(a) {
			continue
		}

		doc.URLs = append(doc.URLs, models.NewsURL{
			Loc: s.config.SiteURL() + "/" + a.Slug,
			News: models.NewsInfo{
				Publication: models.NewsPublication{
					Name:     s.config.AppName,
					Language: s.config.Language,
				},
				PublicationDate: a.PublishedAt.Format(time.RFC3339),
				Title:           a.Title,
				Keywords:        newsKeywords(a),
			},
		})

		if len(doc.URLs) >= s.config.NewsMaxEntries {
			break
		}
	}

	return doc
}

// Whether the article reads as evergreen content
// judged by its tags and category titles
func isEvergreen(a *models.Article) bool {

	var labels []string
	labels = append(labels, a.Tags...)
	for _, cat := range a.Categories {
		labels = append(labels, cat.Title)
	}

	for _, label := range labels {
		label = strings.ToLower(label)
		for _, keyword := range nonNewsKeywords {
			if strings.Contains(label, keyword) {
				return true
			}
		}
	}

	return false
}

// newsKeywords derives the comma joined keyword list of an entry:
// tags, category titles with one level of parents, the article's
// unique linking keyword and the constant fillers, deduplicated.
func newsKeywords(a *models.Article) string {

	var keywords []string
	seen := make(map[string]bool)

	add := func(keyword string) {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			return
		}
		lower := strings.ToLower(keyword)
		if seen[lower] {
			return
		}
		seen[lower] = true
		keywords = append(keywords, keyword)
	}

	for _, tag := range a.Tags {
		add(tag)
	}

	for _, cat := range a.Categories {
		add(cat.Title)
		if cat.Parent != nil {
			add(cat.Parent.Title)
		}
	}

	add(a.UniqueLinkingKeyword)

	for _, filler := range fillerKeywords {
		add(filler)
	}

	if len(keywords) > maxNewsKeywords {
		keywords = keywords[:maxNewsKeywords]
	}

	return strings.Join(keywords, ", ")
}
