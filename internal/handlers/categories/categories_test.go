package categories

import (
	"testing"

	"github.com/techhorizons/website/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	gaming := models.Article{
		Slug:       "gaming-article",
		Categories: []models.Category{{Slug: "gaming"}},
	}
	child := models.Article{
		Slug: "console-article",
		Categories: []models.Category{{
			Slug:   "consoles",
			Parent: &models.CategoryRef{Slug: "gaming"},
		}},
	}
	other := models.Article{
		Slug:       "cloud-article",
		Categories: []models.Category{{Slug: "cloud"}},
	}
	uncategorized := models.Article{Slug: "loose-article"}

	arts := models.Articles{gaming, child, other, uncategorized}

	tests := []struct {
		name string
		slug string
		want models.Articles
	}{
		{"direct and parent matches", "gaming", models.Articles{gaming, child}},
		{"direct only", "cloud", models.Articles{other}},
		{"child slug matches itself", "consoles", models.Articles{child}},
		{"no matches", "science", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := filterByCategory(arts, tt.slug)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterByTag(t *testing.T) {
	t.Parallel()

	ai := models.Article{Slug: "ai-article", Tags: []string{"Machine Learning"}}
	other := models.Article{Slug: "other-article", Tags: []string{"chips"}}
	arts := models.Articles{ai, other}

	// The URL carries the slugified tag
	title, got := filterByTag(arts, "machine-learning")

	if title != "Machine Learning" {
		t.Errorf("title = %q, want %q", title, "Machine Learning")
	}

	if diff := cmp.Diff(models.Articles{ai}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, got := filterByTag(arts, "unknown"); got != nil {
		t.Errorf("got %d articles for an unknown tag, want none", len(got))
	}
}
