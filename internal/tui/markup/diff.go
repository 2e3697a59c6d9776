package markup

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/aymanbagabas/go-udiff"
	"github.com/devnexus/devnexus/internal/tui/theme"
)

// Diff returns the unified diff between two documents, or "" when they are
// equal.
func Diff(oldLabel, newLabel, before, after string) string {
	return udiff.Unified(oldLabel, newLabel, before, after)
}

// ColorDiff styles a unified diff: additions in the success color, removals
// in the error color and hunk headers in the primary color.
func ColorDiff(unified string) string {
	if unified == "" {
		return ""
	}
	t := theme.Current()
	add := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	del := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error))
	hunk := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Bold(true)

	lines := strings.Split(strings.TrimSuffix(unified, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = meta.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunk.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = add.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = del.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
