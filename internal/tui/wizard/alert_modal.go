package wizard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/theme"
)

// AlertModal shows a blocking alert until the user acknowledges it.
type AlertModal struct {
	alert   submit.Alert
	visible bool
}

// NewAlertModal creates a hidden alert modal.
func NewAlertModal() *AlertModal {
	return &AlertModal{}
}

// Show displays alert, replacing any alert already shown.
func (m *AlertModal) Show(alert submit.Alert) {
	m.alert = alert
	m.visible = true
}

// Hide hides the modal.
func (m *AlertModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible.
func (m *AlertModal) IsVisible() bool {
	return m.visible
}

// Alert returns the alert last shown.
func (m *AlertModal) Alert() submit.Alert {
	return m.alert
}

// Update dismisses the modal on enter, space or esc. Other keys are swallowed
// while it is visible.
func (m *AlertModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "enter", " ", "space", "esc":
		m.visible = false
		alert := m.alert
		return func() tea.Msg { return AlertDismissedMsg{Alert: alert} }
	}
	return nil
}

// Render renders the alert.
func (m *AlertModal) Render() string {
	return RenderAlert(m.alert)
}

// RenderAlert renders an alert box. Error alerts use the error color, all
// others the success color.
func RenderAlert(alert submit.Alert) string {
	t := theme.Current()

	accent := t.Success
	icon := "✓ "
	if alert.Title == submit.PickFailedAlert.Title {
		accent = t.Error
		icon = "⚠ "
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accent)).
		MarginBottom(1).
		Render(icon + alert.Title)

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render(alert.Message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("Press Enter to continue")

	content := lipgloss.JoinVertical(lipgloss.Left, title, message, "", hint)

	return lipgloss.NewStyle().
		Width(50).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Render(content)
}

// AlertDismissedMsg is sent when the user acknowledges an alert.
type AlertDismissedMsg struct {
	Alert submit.Alert
}
