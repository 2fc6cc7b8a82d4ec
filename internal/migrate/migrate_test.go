package migrate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseExport(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{
			"title": "Les GPU en 2025",
			"description": "Un tour du marché",
			"slug": "les-gpu-en-2025",
			"category": "Hardware",
			"tags": ["gpu", "hardware"],
			"published": "2025-01-10T08:00:00Z",
			"body": "Le marché des GPU..."
		}
	]`)

	arts, err := parseExport(data)
	if err != nil {
		t.Fatalf("parseExport() error: %v", err)
	}

	want := []legacyArticle{{
		Title:       "Les GPU en 2025",
		Description: "Un tour du marché",
		Slug:        "les-gpu-en-2025",
		Category:    "Hardware",
		Tags:        []string{"gpu", "hardware"},
		Published:   "2025-01-10T08:00:00Z",
		Body:        "Le marché des GPU...",
	}}

	if diff := cmp.Diff(want, arts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseExport([]byte("not json")); err == nil {
		t.Error("expected an error for a malformed export")
	}
}

func TestDeriveSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		art  legacyArticle
		want string
	}{
		{
			name: "export slug wins",
			art:  legacyArticle{Title: "Some Title", Slug: "exported-slug"},
			want: "exported-slug",
		},
		{
			name: "export slug is normalized",
			art:  legacyArticle{Slug: "Événement Tech!"},
			want: "evenement-tech",
		},
		{
			name: "title fallback",
			art:  legacyArticle{Title: "L'IA générative en entreprise"},
			want: "l-ia-generative-en-entreprise",
		},
		{
			name: "nothing usable",
			art:  legacyArticle{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := deriveSlug(&tt.art); got != tt.want {
				t.Errorf("deriveSlug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveCategorySlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"IA", "intelligence-artificielle"},
		{"Jeux Vidéo", "jeux-video"},
		{"Sécurité", "cybersecurite"},
		{"Gaming", "gaming"},
		{"Objets connectés", "objets-connectes"},
	}

	for _, tt := range tests {
		if got := resolveCategorySlug(tt.name); got != tt.want {
			t.Errorf("resolveCategorySlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBuildDoc(t *testing.T) {
	t.Parallel()

	art := legacyArticle{
		Title:       "Les GPU en 2025",
		Description: "Un tour du marché",
		Category:    "Hardware",
		Tags:        []string{"gpu"},
		Published:   "2025-01-10T08:00:00Z",
		Body:        "Le marché des GPU...",
	}
	catIDs := map[string]string{"hardware": "cat-123"}

	doc := buildDoc(&art, "les-gpu-en-2025", catIDs)

	if doc["_type"] != "article" {
		t.Errorf("_type = %v, want article", doc["_type"])
	}

	slugField, ok := doc["slug"].(map[string]any)
	if !ok || slugField["current"] != "les-gpu-en-2025" {
		t.Errorf("slug = %v, want current les-gpu-en-2025", doc["slug"])
	}

	cats, ok := doc["categories"].([]map[string]any)
	if !ok || len(cats) != 1 || cats[0]["_ref"] != "cat-123" {
		t.Errorf("categories = %v, want a single cat-123 reference", doc["categories"])
	}

	// An unknown category leaves the document uncategorized
	art.Category = "Unknown"
	doc = buildDoc(&art, "les-gpu-en-2025", catIDs)
	if _, ok := doc["categories"]; ok {
		t.Errorf("categories = %v, want none for an unknown category", doc["categories"])
	}
}
