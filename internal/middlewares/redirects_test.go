package middlewares

import (
	"testing"

	"github.com/techhorizons/website/internal/config"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"root untouched", "/", "/"},
		{"no trailing slash", "/about", "/about"},
		{"single trailing slash", "/about/", "/about"},
		{"nested trailing slash", "/categories/gaming/", "/categories/gaming"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		want     string
		redirect bool
	}{
		// Deprecated root pagination
		{"page prefix bare", "/page", "/", true},
		{"page prefix nested", "/page/4", "/", true},
		{"page prefix deep", "/page/4/whatever", "/", true},
		{"page as slug", "/pages", "", false},

		// Feed marker
		{"root feed", "/feed", "/", true},
		{"category feed", "/categories/gaming/feed", "/categories/gaming", true},
		{"article feed", "/some-article/feed", "/some-article", true},
		{"feed as slug", "/feedback", "", false},

		// Legacy top level categories
		{"legacy category", "/streaming", "/categories/streaming", true},
		{"legacy category subpath", "/streaming/anything", "/categories/streaming", true},
		{"legacy category wp pagination", "/gaming/page/3", "/categories/gaming", true},
		{"non legacy top segment", "/quantum-leap-explained", "", false},

		// Category pagination collapse
		{"explicit first page", "/categories/gaming/1", "/categories/gaming", true},
		{"second page kept", "/categories/gaming/2", "", false},
		{"double pagination", "/categories/gaming/2/3", "/categories/gaming/2", true},
		{"double first page", "/categories/gaming/1/1", "/categories/gaming/1", true},
		{"category without page", "/categories/gaming", "", false},
		{"non numeric tail", "/categories/gaming/news", "", false},

		// Articles prefix
		{"articles slug", "/articles/my-article", "/my-article", true},
		{"articles nested", "/articles/2024/my-article", "/2024/my-article", true},
		{"bare articles exempt", "/articles", "", false},

		// No rule applies
		{"homepage", "/", "", false},
		{"plain slug", "/how-gpus-work", "", false},
		{"tags section", "/tags/ai", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := RedirectTarget(tt.path, config.LegacyCategories)
			if ok != tt.redirect {
				t.Fatalf("redirect = %v, want %v", ok, tt.redirect)
			}

			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// The table is ordered, a path matched by several rules
// must resolve through the earliest one.
func TestRedirectRulePrecedence(t *testing.T) {
	t.Parallel()

	// "/page/..." also ends with a legacy-looking segment shape,
	// but the deprecated pagination rule comes first
	got, ok := RedirectTarget("/page/gaming", config.LegacyCategories)
	if !ok || got != "/" {
		t.Errorf("got %q (%v), want %q", got, ok, "/")
	}

	// The feed rule strips before the legacy category rule could see it
	got, ok = RedirectTarget("/streaming/feed", config.LegacyCategories)
	if !ok || got != "/streaming" {
		t.Errorf("got %q (%v), want %q", got, ok, "/streaming")
	}
}
