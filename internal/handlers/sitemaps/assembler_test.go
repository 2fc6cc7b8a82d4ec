package sitemaps

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
	"github.com/techhorizons/website/internal/utils"

	"github.com/google/go-cmp/cmp"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testService() *Service {
	return &Service{
		config: &config.Config{
			Protocol:           "https",
			Domain:             "example.com",
			AppName:            "TechHorizons",
			Language:           "he",
			PostsPerPage:       8,
			ArticlesPerSitemap: 400,
			NewsWindow:         48 * time.Hour,
			NewsMaxEntries:     1000,
		},
	}
}

// An article published the given number of days before testNow
func publishedArticle(slug string, daysAgo int) models.Article {
	published := testNow.AddDate(0, 0, -daysAgo)
	return models.Article{
		Title:       "Title of " + slug,
		Slug:        slug,
		PublishedAt: &published,
	}
}

func TestIndexable(t *testing.T) {
	t.Parallel()

	published := testNow.AddDate(0, 0, -1)
	arts := models.Articles{
		{Slug: "draft", PublishedAt: &published, IsDraft: true},
		{Slug: "", PublishedAt: &published},
		{Slug: "no-date"},
		publishedArticle("older", 5),
		publishedArticle("newer", 1),
	}

	got := indexable(arts)
	want := models.Articles{
		publishedArticle("newer", 1),
		publishedArticle("older", 5),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("indexable mismatch (-want +got):\n%s", diff)
	}
}

func TestBasePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days int
		want float64
	}{
		{0, 1.0},
		{7, 1.0},
		{8, 0.9},
		{30, 0.9},
		{31, 0.8},
		{180, 0.8},
		{181, 0.7},
		{1000, 0.7},
	}

	for _, tt := range tests {
		if got := basePriority(tt.days); got != tt.want {
			t.Errorf("basePriority(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestChangeFreq(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days int
		want string
	}{
		{0, "daily"},
		{30, "daily"},
		{31, "weekly"},
		{180, "weekly"},
		{181, "monthly"},
	}

	for _, tt := range tests {
		if got := changeFreq(tt.days); got != tt.want {
			t.Errorf("changeFreq(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestBuildArticleChunkPriorities(t *testing.T) {
	t.Parallel()

	s := testService()
	chunk := models.Articles{publishedArticle("fresh-article", 3)}

	tests := []struct {
		name       string
		chunkIndex int
		want       string
	}{
		{"first chunk", 0, "1.0"},
		{"third chunk", 2, "0.8"},
		{"decay clamped", 9, "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := s.buildArticleChunk(chunk, tt.chunkIndex, testNow)
			if len(doc.URLs) != 1 {
				t.Fatalf("got %d entries, want 1", len(doc.URLs))
			}

			if got := doc.URLs[0].Priority; got != tt.want {
				t.Errorf("priority = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildArticleChunkEntries(t *testing.T) {
	t.Parallel()

	s := testService()
	published := testNow.AddDate(0, 0, -3)
	updated := testNow.AddDate(0, 0, -1)
	chunk := models.Articles{{
		Slug:        "how-gpus-work",
		PublishedAt: &published,
		UpdatedAt:   &updated,
	}}

	doc := s.buildArticleChunk(chunk, 0, testNow)
	got := doc.URLs[0]

	want := models.SitemapURL{
		Loc:        "https://example.com/how-gpus-work",
		LastMod:    updated.Format(time.RFC3339),
		ChangeFreq: "daily",
		Priority:   "1.0",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCategorySitemap(t *testing.T) {
	t.Parallel()

	s := testService()
	cats := models.Categories{
		{Title: "Gaming", Slug: "gaming"},
		{Title: "Empty", Slug: "empty"},
	}

	// 17 articles in gaming means 3 pagination pages at 8 per page
	var arts models.Articles
	for range 17 {
		arts = append(arts, models.Article{
			Categories: []models.Category{{Slug: "gaming"}},
		})
	}

	doc := s.buildCategorySitemap(cats, arts)

	var locs []string
	for _, u := range doc.URLs {
		locs = append(locs, u.Loc)
	}

	want := []string{
		"https://example.com/categories/gaming",
		"https://example.com/categories/gaming/2",
		"https://example.com/categories/gaming/3",
		"https://example.com/categories/empty",
	}

	if diff := cmp.Diff(want, locs); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}

	if got := doc.URLs[0].Priority; got != "0.8" {
		t.Errorf("root priority = %q, want %q", got, "0.8")
	}

	if got := doc.URLs[1].Priority; got != "0.6" {
		t.Errorf("pagination priority = %q, want %q", got, "0.6")
	}
}

func TestBuildCategorySitemapParentCounts(t *testing.T) {
	t.Parallel()

	s := testService()
	cats := models.Categories{{Title: "Hardware", Slug: "hardware"}}

	// 9 articles in a child category count toward the parent listing
	var arts models.Articles
	for range 9 {
		arts = append(arts, models.Article{
			Categories: []models.Category{{
				Slug:   "gpus",
				Parent: &models.CategoryRef{Slug: "hardware"},
			}},
		})
	}

	doc := s.buildCategorySitemap(cats, arts)

	want := []string{
		"https://example.com/categories/hardware",
		"https://example.com/categories/hardware/2",
	}

	var locs []string
	for _, u := range doc.URLs {
		locs = append(locs, u.Loc)
	}

	if diff := cmp.Diff(want, locs); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTagsSitemap(t *testing.T) {
	t.Parallel()

	s := testService()

	tagged := func(tag string, count int) models.Articles {
		var arts models.Articles
		for range count {
			arts = append(arts, models.Article{Tags: []string{tag}})
		}
		return arts
	}

	var arts models.Articles
	arts = append(arts, tagged("ai", 50)...)     // busy, capped pagination
	arts = append(arts, tagged("gadgets", 6)...) // mid tier
	arts = append(arts, tagged("quantum", 1)...) // low tier

	doc := s.buildTagsSitemap(arts)

	priorities := make(map[string]string)
	var aiPages int
	for _, u := range doc.URLs {
		switch u.Loc {
		case "https://example.com/tags/ai":
			priorities["ai"] = u.Priority
		case "https://example.com/tags/gadgets":
			priorities["gadgets"] = u.Priority
		case "https://example.com/tags/quantum":
			priorities["quantum"] = u.Priority
		}
		if strings.HasPrefix(u.Loc, "https://example.com/tags/ai/") {
			aiPages++
		}
	}

	want := map[string]string{"ai": "0.8", "gadgets": "0.7", "quantum": "0.6"}
	if diff := cmp.Diff(want, priorities); diff != "" {
		t.Errorf("priorities mismatch (-want +got):\n%s", diff)
	}

	// 50 articles make 7 pages but pagination entries stop at page 5
	if aiPages != 4 {
		t.Errorf("got %d pagination entries for the busy tag, want 4", aiPages)
	}
}

func TestBuildPagesSitemap(t *testing.T) {
	t.Parallel()

	s := testService()
	doc := s.buildPagesSitemap()

	if len(doc.URLs) != len(staticPages) {
		t.Fatalf("got %d entries, want %d", len(doc.URLs), len(staticPages))
	}

	// The homepage leads with the highest priority
	home := doc.URLs[0]
	if home.Loc != "https://example.com/" || home.Priority != "1.0" || home.ChangeFreq != "hourly" {
		t.Errorf("unexpected homepage entry: %+v", home)
	}

	// The legal pages trail with the lowest
	last := doc.URLs[len(doc.URLs)-1]
	if last.Priority != "0.3" || last.ChangeFreq != "yearly" {
		t.Errorf("unexpected legal page entry: %+v", last)
	}
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	s := testService()

	// Two full chunks and a remainder
	var arts models.Articles
	for range 2*s.config.ArticlesPerSitemap + 1 {
		arts = append(arts, publishedArticle("some-article", 3))
	}

	chunks := utils.Chunk(indexable(arts), s.config.ArticlesPerSitemap)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	index := s.buildIndex(chunks, testNow)

	// Three article chunks plus categories, tags and pages
	if len(index.Sitemaps) != 6 {
		t.Fatalf("got %d references, want 6", len(index.Sitemaps))
	}

	if got := index.Sitemaps[0].Loc; got != "https://example.com/sitemap-articles-1.xml" {
		t.Errorf("first reference is %q", got)
	}

	for _, ref := range index.Sitemaps {
		if ref.LastMod == "" {
			t.Errorf("reference %q has no lastmod", ref.Loc)
		}
	}
}

// Raw markup characters in content must never survive into the XML
func TestSitemapEscaping(t *testing.T) {
	t.Parallel()

	s := testService()
	published := testNow.AddDate(0, 0, -1)
	chunk := models.Articles{{
		Slug:        "q&a-about-gpus",
		PublishedAt: &published,
	}}

	out, err := xml.Marshal(s.buildArticleChunk(chunk, 0, testNow))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(out), "q&a") {
		t.Errorf("raw ampersand leaked into the XML: %s", out)
	}

	if !strings.Contains(string(out), "q&amp;a-about-gpus") {
		t.Errorf("escaped slug missing from the XML: %s", out)
	}
}
