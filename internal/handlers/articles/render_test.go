package articles

import (
	"strings"
	"testing"
)

func TestRenderBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		contains string
		excludes string
	}{
		{
			name:     "markdown heading",
			body:     "## The state of GPUs",
			contains: "<h2",
		},
		{
			name:     "markdown link",
			body:     "See [the docs](https://example.com).",
			contains: `href="https://example.com"`,
		},
		{
			name:     "script stripped",
			body:     "Hello <script>alert(1)</script> world",
			excludes: "<script>",
		},
		{
			name:     "event handler stripped",
			body:     `<p onclick="alert(1)">click</p>`,
			excludes: "onclick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderBody(tt.body)
			if err != nil {
				t.Fatal(err)
			}

			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("output %q does not contain %q", got, tt.contains)
			}

			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("output %q contains %q", got, tt.excludes)
			}
		})
	}
}
