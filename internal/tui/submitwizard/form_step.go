package submitwizard

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/devnexus/devnexus/internal/tui/wizard"
)

// fieldInput is one focusable row of a form step.
type fieldInput struct {
	view submit.FieldView
	text textinput.Model
	area textarea.Model
}

func (f *fieldInput) sameAs(v submit.FieldView) bool {
	if f.view.Kind != v.Kind {
		return false
	}
	if v.Kind == submit.KindImage {
		return f.view.Slot == v.Slot
	}
	return f.view.Field == v.Field
}

func newFieldInput(v submit.FieldView, width int) *fieldInput {
	in := &fieldInput{view: v}
	switch v.Kind {
	case submit.KindText:
		ti := textinput.New()
		ti.Placeholder = v.Placeholder
		ti.Prompt = "> "
		ti.SetStyles(inputStyles())
		ti.SetWidth(width - 2)
		ti.SetValue(v.Value)
		in.text = ti
	case submit.KindMultiline:
		ta := textarea.New()
		ta.Placeholder = v.Placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 2000
		ta.SetStyles(areaStyles())
		ta.SetWidth(width)
		ta.SetHeight(4)
		ta.SetValue(v.Value)
		in.area = ta
	}
	return in
}

// FormStep edits the fields one wizard step shows. The field set comes from
// submit.Render and is re-synced whenever the form changes.
type FormStep struct {
	step    submit.Step
	inputs  []*fieldInput
	focus   int // -1 when blurred
	width   int
	height  int
	tmpFile string
	edits   []FieldChangedMsg
}

// NewFormStep creates a step for view with nothing focused.
func NewFormStep(view submit.StepView) *FormStep {
	s := &FormStep{step: view.Step, focus: -1, width: modalContentWidth, height: 20}
	s.Sync(view)
	return s
}

// Step returns the sequencer step this model edits.
func (s *FormStep) Step() submit.Step { return s.step }

// Sync reconciles the inputs with view. Inputs whose field survives keep
// their editing state; values of non-text fields are refreshed. Focus stays
// on the same field when it is still shown.
func (s *FormStep) Sync(view submit.StepView) {
	var focused *fieldInput
	if s.focus >= 0 && s.focus < len(s.inputs) {
		focused = s.inputs[s.focus]
	}

	next := make([]*fieldInput, 0, len(view.Fields))
	for _, v := range view.Fields {
		var reuse *fieldInput
		for _, old := range s.inputs {
			if old.sameAs(v) {
				reuse = old
				break
			}
		}
		if reuse == nil {
			reuse = newFieldInput(v, s.width)
		}
		reuse.view = v
		next = append(next, reuse)
	}
	s.inputs = next

	if focused == nil {
		return
	}
	s.focus = -1
	for i, in := range s.inputs {
		if in == focused {
			s.focus = i
			return
		}
	}
	if len(s.inputs) > 0 {
		s.focusAt(len(s.inputs) - 1)
	}
}

// Fields returns the field views in display order.
func (s *FormStep) Fields() []submit.FieldView {
	out := make([]submit.FieldView, len(s.inputs))
	for i, in := range s.inputs {
		out[i] = in.view
	}
	return out
}

// Focused returns the focused field, if any.
func (s *FormStep) Focused() (submit.FieldView, bool) {
	if s.focus < 0 || s.focus >= len(s.inputs) {
		return submit.FieldView{}, false
	}
	return s.inputs[s.focus].view, true
}

// Init focuses the first field.
func (s *FormStep) Init() tea.Cmd {
	return s.Focus()
}

// Focus gives focus to the first field.
func (s *FormStep) Focus() tea.Cmd {
	return s.focusAt(0)
}

// FocusLast gives focus to the last field.
func (s *FormStep) FocusLast() tea.Cmd {
	return s.focusAt(len(s.inputs) - 1)
}

// Blur removes focus from every field.
func (s *FormStep) Blur() {
	for _, in := range s.inputs {
		switch in.view.Kind {
		case submit.KindText:
			in.text.Blur()
		case submit.KindMultiline:
			in.area.Blur()
		}
	}
	s.focus = -1
}

func (s *FormStep) focusAt(i int) tea.Cmd {
	s.Blur()
	if i < 0 || i >= len(s.inputs) {
		return nil
	}
	s.focus = i
	in := s.inputs[i]
	switch in.view.Kind {
	case submit.KindText:
		return in.text.Focus()
	case submit.KindMultiline:
		return in.area.Focus()
	}
	return nil
}

// SetSize updates the dimensions for the step.
func (s *FormStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	for _, in := range s.inputs {
		switch in.view.Kind {
		case submit.KindText:
			in.text.SetWidth(width - 2)
		case submit.KindMultiline:
			in.area.SetWidth(width)
		}
	}
}

func (s *FormStep) changed(field submit.Field, value string) {
	s.edits = append(s.edits, FieldChangedMsg{Field: field, Value: value})
}

// TakeEdits returns the field edits made since the last call, in the order
// they were typed. The owner applies them before handling the next message.
func (s *FormStep) TakeEdits() []FieldChangedMsg {
	edits := s.edits
	s.edits = nil
	return edits
}

// Update handles messages for the focused field.
func (s *FormStep) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(DescriptionEditedMsg); ok {
		return s.applyEdited(m.Content)
	}

	if s.focus < 0 || s.focus >= len(s.inputs) {
		return nil
	}
	in := s.inputs[s.focus]

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focus < len(s.inputs)-1 {
				return s.focusAt(s.focus + 1)
			}
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		case "shift+tab":
			if s.focus > 0 {
				return s.focusAt(s.focus - 1)
			}
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}

		switch in.view.Kind {
		case submit.KindChoice:
			return s.updateChoice(in, keyMsg.String())
		case submit.KindToggle:
			switch keyMsg.String() {
			case " ", "space", "enter":
				s.changed(in.view.Field, fmt.Sprint(in.view.Value != "true"))
			}
			return nil
		case submit.KindImage:
			switch keyMsg.String() {
			case " ", "space", "enter":
				slot := in.view.Slot
				return func() tea.Msg { return OpenPickerMsg{Slot: slot} }
			}
			return nil
		case submit.KindText:
			if keyMsg.String() == "enter" {
				if s.focus < len(s.inputs)-1 {
					return s.focusAt(s.focus + 1)
				}
				return func() tea.Msg { return wizard.TabExitForwardMsg{} }
			}
		case submit.KindMultiline:
			if keyMsg.String() == "ctrl+e" {
				return s.openEditor(in.area.Value())
			}
		}
	}

	return s.updateText(in, msg)
}

// updateText forwards msg to a text input and records edits.
func (s *FormStep) updateText(in *fieldInput, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch in.view.Kind {
	case submit.KindText:
		before := in.text.Value()
		in.text, cmd = in.text.Update(msg)
		if after := in.text.Value(); after != before {
			s.changed(in.view.Field, after)
		}
	case submit.KindMultiline:
		before := in.area.Value()
		in.area, cmd = in.area.Update(msg)
		if after := in.area.Value(); after != before {
			s.changed(in.view.Field, after)
		}
	}
	return cmd
}

func (s *FormStep) updateChoice(in *fieldInput, key string) tea.Cmd {
	opts := in.view.Options
	if len(opts) == 0 {
		return nil
	}
	idx := -1
	for i, o := range opts {
		if o == in.view.Value {
			idx = i
			break
		}
	}
	switch key {
	case "right", "l", " ", "space":
		idx = (idx + 1) % len(opts)
	case "left", "h":
		if idx <= 0 {
			idx = len(opts) - 1
		} else {
			idx--
		}
	default:
		return nil
	}
	s.changed(in.view.Field, opts[idx])
	return nil
}

// openEditor launches $EDITOR on the description.
func (s *FormStep) openEditor(content string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "devnexus_description_*.md")
	if err != nil {
		logger.Warn("Cannot create editor temp file: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("devnexus", tmpfile.Name())
	if err != nil {
		logger.Warn("No editor available: %v", err)
		_ = os.Remove(tmpfile.Name())
		s.tmpFile = ""
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			logger.Warn("Editor exited with error: %v", err)
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return DescriptionEditedMsg{Content: strings.TrimRight(string(data), "\n")}
	})
}

func (s *FormStep) applyEdited(content string) tea.Cmd {
	if s.tmpFile != "" {
		_ = os.Remove(s.tmpFile)
		s.tmpFile = ""
	}
	for _, in := range s.inputs {
		if in.view.Kind == submit.KindMultiline {
			in.area.SetValue(content)
			s.changed(in.view.Field, content)
			return nil
		}
	}
	return nil
}

// View renders the step.
func (s *FormStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	for i, in := range s.inputs {
		focused := i == s.focus
		if i > 0 {
			b.WriteString("\n")
		}

		labelStyle := st.Label
		if focused {
			labelStyle = st.LabelActive
		}
		label := labelStyle.Render(in.view.Label)
		if in.view.Required {
			label += st.Required.Render(" *")
		}
		if in.view.Kind != submit.KindToggle {
			b.WriteString(label)
			b.WriteString("\n")
		}

		switch in.view.Kind {
		case submit.KindText:
			b.WriteString(in.text.View())
		case submit.KindMultiline:
			b.WriteString(in.area.View())
		case submit.KindChoice:
			b.WriteString(s.renderChoice(in.view, focused))
		case submit.KindToggle:
			box := "[ ] "
			if in.view.Value == "true" {
				box = "[x] "
			}
			b.WriteString(labelStyle.Render(box) + label)
		case submit.KindImage:
			value := st.Muted.Render("No image selected")
			if in.view.Value != "" {
				value = st.Value.Render("🖼 " + in.view.Value)
			}
			if focused {
				value = st.LabelActive.Render("▸ ") + value
			} else {
				value = "  " + value
			}
			b.WriteString(value)
		}
		b.WriteString("\n")

		if in.view.Help != "" {
			b.WriteString(st.Muted.Render(in.view.Help))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.hints())
	return b.String()
}

func (s *FormStep) renderChoice(v submit.FieldView, focused bool) string {
	st := theme.Current().S()
	var lines []string
	var line string
	for _, opt := range v.Options {
		chip := st.Chip.Render(opt)
		if opt == v.Value {
			chip = st.ChipSelected.Render(opt)
		}
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(chip) > s.width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	out := strings.Join(lines, "\n")
	if v.Value == "" && !focused {
		out += "\n" + st.Muted.Render("Select a "+strings.ToLower(v.Label))
	}
	return out
}

func (s *FormStep) hints() string {
	v, ok := s.Focused()
	if !ok {
		return wizard.RenderHintBar("tab", "fields", "esc", "back")
	}
	switch v.Kind {
	case submit.KindChoice:
		return wizard.RenderHintBar("←→", "choose", "tab", "next", "ctrl+s", "save draft")
	case submit.KindToggle:
		return wizard.RenderHintBar("space", "toggle", "tab", "next", "ctrl+s", "save draft")
	case submit.KindImage:
		return wizard.RenderHintBar("enter", "choose image", "tab", "next", "ctrl+s", "save draft")
	case submit.KindMultiline:
		return wizard.RenderHintBar("ctrl+e", "editor", "tab", "next", "ctrl+s", "save draft")
	}
	return wizard.RenderHintBar("enter/tab", "next", "shift+tab", "prev", "ctrl+s", "save draft")
}
