package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID is the position of a button in its bar.
type ButtonID int

const (
	ButtonNone ButtonID = -1
	ButtonBack ButtonID = 0
	ButtonNext ButtonID = 1
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard focus.
type ButtonBar struct {
	buttons []Button
	focused ButtonID
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: ButtonNone,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons with their current state.
func (b *ButtonBar) Buttons() []Button {
	out := make([]Button, len(b.buttons))
	copy(out, b.buttons)
	return out
}

// IsFocused reports whether any button holds focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focused != ButtonNone
}

// FocusedButton returns the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	return b.focused
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	for i := range b.buttons {
		if b.enabled(i) {
			b.setFocus(ButtonID(i))
			return true
		}
	}
	return false
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.enabled(i) {
			b.setFocus(ButtonID(i))
			return true
		}
	}
	return false
}

// FocusNext moves focus right. It returns false when focus falls off the end,
// leaving the bar blurred so the caller can hand focus back to the step.
func (b *ButtonBar) FocusNext() bool {
	for i := int(b.focused) + 1; i < len(b.buttons); i++ {
		if b.enabled(i) {
			b.setFocus(ButtonID(i))
			return true
		}
	}
	b.Blur()
	return false
}

// FocusPrev moves focus left. It returns false when focus falls off the start.
func (b *ButtonBar) FocusPrev() bool {
	start := int(b.focused) - 1
	if b.focused == ButtonNone {
		start = len(b.buttons) - 1
	}
	for i := start; i >= 0; i-- {
		if b.enabled(i) {
			b.setFocus(ButtonID(i))
			return true
		}
	}
	b.Blur()
	return false
}

// Blur removes focus from every button.
func (b *ButtonBar) Blur() {
	b.setFocus(ButtonNone)
}

func (b *ButtonBar) enabled(i int) bool {
	return b.buttons[i].State != ButtonDisabled
}

func (b *ButtonBar) setFocus(id ButtonID) {
	for i := range b.buttons {
		switch {
		case b.buttons[i].State == ButtonDisabled:
		case ButtonID(i) == id:
			b.buttons[i].State = ButtonFocused
		default:
			b.buttons[i].State = ButtonNormal
		}
	}
	b.focused = id
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	margin := lipgloss.NewStyle().MarginLeft(1).MarginRight(1)

	var renderedButtons []string
	for _, btn := range b.buttons {
		var style lipgloss.Style
		switch btn.State {
		case ButtonDisabled:
			style = s.ButtonDisabled
		case ButtonFocused:
			style = s.ButtonFocused
		default:
			style = s.ButtonNormal
		}
		renderedButtons = append(renderedButtons, margin.Render(style.Render(btn.Label)))
	}

	result := strings.Join(renderedButtons, "")
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreateBackNextButtons creates the standard Back/Next button set.
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	nextState := ButtonNormal
	if !nextEnabled {
		nextState = ButtonDisabled
	}
	return []Button{
		{Label: "← Back", State: backState},
		{Label: nextLabel, State: nextState},
	}
}
