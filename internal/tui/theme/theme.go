package theme

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgSurface0 string
	BgSurface1 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the active theme.
func Current() *Theme {
	currentOnce.Do(func() { current = NewSlate() })
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	button := lipgloss.NewStyle().Padding(0, 2)

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().Foreground(c(t.FgBright)).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		Progress:    lipgloss.NewStyle().Foreground(c(t.FgSubtle)),

		Label:       lipgloss.NewStyle().Foreground(c(t.FgBase)).Bold(true),
		LabelActive: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Required:    lipgloss.NewStyle().Foreground(c(t.Error)),
		Muted:       lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Value:       lipgloss.NewStyle().Foreground(c(t.FgBright)),
		Error:       lipgloss.NewStyle().Foreground(c(t.Error)),
		Success:     lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(c(t.Warning)),
		Price:       lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),

		Chip:         lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Background(c(t.BgSurface0)).Padding(0, 1),
		ChipSelected: lipgloss.NewStyle().Foreground(c(t.FgBright)).Background(c(t.Primary)).Padding(0, 1).Bold(true),

		ButtonNormal:   button.Foreground(c(t.FgBase)).Background(c(t.BgSurface1)),
		ButtonFocused:  button.Foreground(c(t.FgBright)).Background(c(t.Primary)).Bold(true),
		ButtonDisabled: button.Foreground(c(t.FgMuted)).Background(c(t.BgSurface0)),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Primary)).
			Background(c(t.BgBase)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),

		HintKey:  lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		HintDesc: lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSep:  lipgloss.NewStyle().Foreground(c(t.BgOverlay)),

		TableHeader: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Foreground(c(t.FgBase)).Padding(0, 1),
		TableBorder: lipgloss.NewStyle().Foreground(c(t.BgOverlay)),

		Verified: lipgloss.NewStyle().Foreground(c(t.Info)).Bold(true),
	}
}

// StatusStyle colors a project status the way the profile screen does.
func (t *Theme) StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch strings.ToLower(status) {
	case "approved":
		return base.Foreground(lipgloss.Color(t.Success))
	case "pending":
		return base.Foreground(lipgloss.Color(t.Warning))
	case "marketplace":
		return base.Foreground(lipgloss.Color(t.Tertiary))
	case "rejected", "withdrawn":
		return base.Foreground(lipgloss.Color(t.Error))
	default:
		return base.Foreground(lipgloss.Color(t.FgSubtle))
	}
}
