package sitemaps

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/techhorizons/website/internal/models"
)

// An article published the given number of hours before testNow
func newsArticle(slug, title string, hoursAgo int) models.Article {
	published := testNow.Add(-time.Duration(hoursAgo) * time.Hour)
	return models.Article{
		Title:       title,
		Slug:        slug,
		PublishedAt: &published,
	}
}

func TestBuildNewsSitemapWindow(t *testing.T) {
	t.Parallel()

	s := testService()
	arts := models.Articles{
		newsArticle("fresh-news-article", "A fresh news article", 1),
		newsArticle("day-old-article", "A day old news article", 30),
		newsArticle("stale-article", "A stale news article", 72),
	}

	doc := s.buildNewsSitemap(arts, testNow)

	if len(doc.URLs) != 2 {
		t.Fatalf("got %d entries, want 2", len(doc.URLs))
	}

	for _, u := range doc.URLs {
		if strings.Contains(u.Loc, "stale") {
			t.Errorf("stale article made it into the news sitemap: %s", u.Loc)
		}
	}
}

func TestBuildNewsSitemapFilters(t *testing.T) {
	t.Parallel()

	s := testService()

	evergreen := newsArticle("gpu-buying-guide", "The complete GPU buying guide", 1)
	evergreen.Tags = []string{"Guide"}

	evergreenCat := newsArticle("best-laptops", "The best laptops compared", 1)
	evergreenCat.Categories = []models.Category{{Title: "Hardware Reviews", Slug: "reviews"}}

	arts := models.Articles{
		newsArticle("tiny", "Short", 1), // title under the minimum
		evergreen,
		evergreenCat,
		newsArticle("proper-news-item", "A proper news item title", 2),
	}

	doc := s.buildNewsSitemap(arts, testNow)

	if len(doc.URLs) != 1 {
		t.Fatalf("got %d entries, want 1", len(doc.URLs))
	}

	if got := doc.URLs[0].Loc; got != "https://example.com/proper-news-item" {
		t.Errorf("got %q", got)
	}
}

func TestBuildNewsSitemapCap(t *testing.T) {
	t.Parallel()

	s := testService()
	s.config.NewsMaxEntries = 3

	var arts models.Articles
	for range 10 {
		arts = append(arts, newsArticle("news-article", "A proper news item title", 1))
	}

	doc := s.buildNewsSitemap(arts, testNow)
	if len(doc.URLs) != 3 {
		t.Errorf("got %d entries, want 3", len(doc.URLs))
	}
}

func TestNewsKeywords(t *testing.T) {
	t.Parallel()

	a := &models.Article{
		Tags: []string{"AI", "chips"},
		Categories: []models.Category{{
			Title:  "Semiconductors",
			Parent: &models.CategoryRef{Title: "Hardware"},
		}},
		UniqueLinkingKeyword: "neural processors",
	}

	got := newsKeywords(a)
	want := "AI, chips, Semiconductors, Hardware, neural processors, " +
		"technologie, high-tech, innovation"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewsKeywordsDeduplicated(t *testing.T) {
	t.Parallel()

	a := &models.Article{
		Tags:                 []string{"innovation", "Innovation", "chips"},
		UniqueLinkingKeyword: "chips",
	}

	got := newsKeywords(a)
	want := "innovation, chips, technologie, high-tech"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewsKeywordsCapped(t *testing.T) {
	t.Parallel()

	a := &models.Article{
		Tags: []string{
			"one", "two", "three", "four", "five",
			"six", "seven", "eight", "nine", "ten", "eleven",
		},
	}

	got := strings.Split(newsKeywords(a), ", ")
	if len(got) != maxNewsKeywords {
		t.Errorf("got %d keywords, want %d", len(got), maxNewsKeywords)
	}
}

// No items inside the window still yields a valid empty urlset
func TestBuildNewsSitemapEmpty(t *testing.T) {
	t.Parallel()

	s := testService()
	arts := models.Articles{
		newsArticle("stale-article", "A stale news article", 100),
	}

	doc := s.buildNewsSitemap(arts, testNow)
	if len(doc.URLs) != 0 {
		t.Fatalf("got %d entries, want 0", len(doc.URLs))
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	for _, ns := range []string{models.SitemapNamespace, models.NewsNamespace} {
		if !strings.Contains(string(out), ns) {
			t.Errorf("namespace %q missing from the empty document", ns)
		}
	}
}
