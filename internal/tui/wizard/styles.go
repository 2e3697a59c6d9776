package wizard

import (
	"strings"

	"github.com/devnexus/devnexus/internal/tui/theme"
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSep.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// TabExitForwardMsg is sent when Tab leaves the last input of a step.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab leaves the first input of a step.
type TabExitBackwardMsg struct{}
