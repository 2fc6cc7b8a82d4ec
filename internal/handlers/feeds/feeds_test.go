package feeds

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testService() *Service {
	return &Service{
		config: &config.Config{
			Protocol:       "https",
			Domain:         "example.com",
			AppName:        "TechHorizons",
			AppDescription: "Technology news",
			Language:       "he",
			WebmasterEmail: "webmaster@example.com",
		},
	}
}

func feedArticle(slug string, daysAgo int) models.Article {
	published := testNow.AddDate(0, 0, -daysAgo)
	return models.Article{
		Title:       "Title of " + slug,
		Description: "Description of " + slug,
		Slug:        slug,
		PublishedAt: &published,
		Authors:     []models.Author{{Name: "Dana"}},
		Categories:  []models.Category{{Title: "Gaming", Slug: "gaming"}},
	}
}

func TestBuildFeedChannel(t *testing.T) {
	t.Parallel()

	s := testService()
	rss := s.buildFeed(nil, testNow)

	if rss.Version != "2.0" {
		t.Errorf("version = %q, want %q", rss.Version, "2.0")
	}

	ch := rss.Channel
	if ch.Title != "TechHorizons" || ch.Link != "https://example.com" {
		t.Errorf("unexpected channel metadata: %+v", ch)
	}

	if ch.Language != "he" || ch.TTL != feedTTL {
		t.Errorf("unexpected channel metadata: %+v", ch)
	}

	// An empty channel is still a valid document
	if len(ch.Items) != 0 {
		t.Errorf("got %d items, want 0", len(ch.Items))
	}
}

func TestBuildFeedItems(t *testing.T) {
	t.Parallel()

	s := testService()
	rss := s.buildFeed(models.Articles{feedArticle("big-gpu-launch", 1)}, testNow)

	if len(rss.Channel.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(rss.Channel.Items))
	}

	item := rss.Channel.Items[0]
	if item.Link != "https://example.com/big-gpu-launch" {
		t.Errorf("link = %q", item.Link)
	}

	if item.Author != "Dana" {
		t.Errorf("author = %q, want %q", item.Author, "Dana")
	}

	if len(item.Categories) != 1 || item.Categories[0] != "Gaming" {
		t.Errorf("categories = %v", item.Categories)
	}

	wantDate := testNow.AddDate(0, 0, -1).Format(time.RFC1123Z)
	if item.PubDate != wantDate {
		t.Errorf("pubDate = %q, want %q", item.PubDate, wantDate)
	}
}

func TestBuildFeedSize(t *testing.T) {
	t.Parallel()

	s := testService()

	var arts models.Articles
	for range feedSize + 10 {
		arts = append(arts, feedArticle("some-article", 1))
	}

	rss := s.buildFeed(arts, testNow)
	if got := len(rss.Channel.Items); got != feedSize {
		t.Errorf("got %d items, want %d", got, feedSize)
	}
}

func TestPublishable(t *testing.T) {
	t.Parallel()

	published := testNow.AddDate(0, 0, -1)
	arts := models.Articles{
		{Slug: "draft-article", PublishedAt: &published, IsDraft: true},
		{Slug: "undated-article"},
		feedArticle("older-article", 5),
		feedArticle("newer-article", 1),
	}

	got := publishable(arts)
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}

	if got[0].Slug != "newer-article" || got[1].Slug != "older-article" {
		t.Errorf("wrong order: %q, %q", got[0].Slug, got[1].Slug)
	}
}

func TestFeedEscaping(t *testing.T) {
	t.Parallel()

	s := testService()
	a := feedArticle("qa-article", 1)
	a.Title = "Q&A: <tags> and \"quotes\""

	out, err := xml.Marshal(s.buildFeed(models.Articles{a}, testNow))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(out), "Q&A") || strings.Contains(string(out), "<tags>") {
		t.Errorf("raw markup leaked into the XML: %s", out)
	}
}
