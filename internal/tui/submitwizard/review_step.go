package submitwizard

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/markup"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/devnexus/devnexus/internal/tui/wizard"
)

// ReviewStep shows the read-only summary and the fields still missing.
type ReviewStep struct {
	viewport viewport.Model
	form     submit.Form
	issues   submit.ValidationErrors
	width    int
	height   int
}

// NewReviewStep creates a review step for form.
func NewReviewStep(form submit.Form) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(modalContentWidth),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	r := &ReviewStep{
		viewport: vp,
		form:     form,
		issues:   form.Check(),
		width:    modalContentWidth,
		height:   20,
	}
	r.render()
	return r
}

// Issues returns the advisory problems found in the form.
func (r *ReviewStep) Issues() submit.ValidationErrors { return r.issues }

// Sync re-renders for an updated form.
func (r *ReviewStep) Sync(form submit.Form) {
	r.form = form
	r.issues = form.Check()
	r.render()
}

func (r *ReviewStep) render() {
	r.viewport.SetContent(markup.RenderMarkdown(submit.ReviewMarkdown(r.form), r.width))
	r.viewport.GotoTop()
}

// Init initializes the review step.
func (r *ReviewStep) Init() tea.Cmd { return nil }

// Focus is a no-op; the viewport always scrolls.
func (r *ReviewStep) Focus() tea.Cmd { return nil }

// FocusLast is a no-op.
func (r *ReviewStep) FocusLast() tea.Cmd { return nil }

// Blur is a no-op.
func (r *ReviewStep) Blur() {}

// SetSize updates the dimensions for the review step.
func (r *ReviewStep) SetSize(width, height int) {
	changed := width != r.width
	r.width = width
	r.height = height
	r.viewport.SetWidth(width)

	// Reserve lines for issues and the hint bar
	vpHeight := height - len(r.issues) - 3
	if vpHeight < 5 {
		vpHeight = 5
	}
	r.viewport.SetHeight(vpHeight)
	if changed {
		r.render()
	}
}

// Update scrolls the summary.
func (r *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

// View renders the review step.
func (r *ReviewStep) View() string {
	st := theme.Current().S()
	var b strings.Builder
	b.WriteString(r.viewport.View())
	b.WriteString("\n")
	if len(r.issues) > 0 {
		b.WriteString("\n")
		for _, issue := range r.issues {
			b.WriteString(st.Warning.Render("! " + issue.Message))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar("↑↓", "scroll", "tab", "buttons", "esc", "back"))
	return b.String()
}
