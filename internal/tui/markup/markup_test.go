package markup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("# Project Summary\n\nReady to ship.", 60))
	assert.Contains(t, out, "Project Summary")
	assert.Contains(t, out, "Ready to ship.")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short line", 20, "short line"},
		{"wraps at space", "alpha beta gamma", 10, "alpha\nbeta gamma"},
		{"keeps newlines", "a\nb", 5, "a\nb"},
		{"zero width", "unchanged text", 0, "unchanged text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, tt.width))
		})
	}
}

func TestHighlight_JSON(t *testing.T) {
	src := `{"title": "Pixel Forge", "forSale": true}`
	out := Highlight(src, "submission.json")
	assert.NotEqual(t, src, out, "expected escape sequences")
	assert.Equal(t, src, ansi.Strip(out))
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a", "b", "same\n", "same\n"))

	d := Diff("before", "after", "title: Old\ncategory: Social\n", "title: New\ncategory: Social\n")
	require.NotEmpty(t, d)
	assert.Contains(t, d, "--- before")
	assert.Contains(t, d, "+++ after")
	assert.Contains(t, d, "-title: Old")
	assert.Contains(t, d, "+title: New")

	colored := ColorDiff(d)
	assert.Equal(t, strings.TrimSuffix(d, "\n"), ansi.Strip(colored))
	assert.Empty(t, ColorDiff(""))
}
