// Package markup renders markdown, highlighted source and diffs for the
// terminal.
package markup

import (
	"strings"

	"charm.land/glamour/v2"
)

// MaxWidth caps rendered output for readability.
const MaxWidth = 120

// RenderMarkdown renders markdown content using glamour.
// Falls back to plain text wrapping if rendering fails.
func RenderMarkdown(content string, width int) string {
	if width > MaxWidth || width <= 0 {
		width = MaxWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return WrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return WrapText(content, width)
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// WrapText wraps each line at the last space before width.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		for len(line) > width {
			breakPoint := width
			for j := width; j > 0; j-- {
				if line[j] == ' ' {
					breakPoint = j
					break
				}
			}
			result.WriteString(line[:breakPoint])
			result.WriteString("\n")
			line = strings.TrimLeft(line[breakPoint:], " ")
		}
		result.WriteString(line)
	}
	return result.String()
}
