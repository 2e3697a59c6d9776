package submitwizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/store"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/devnexus/devnexus/internal/tui/wizard"
)

// Submitter records a finalized submission.
type Submitter interface {
	Submit(ctx context.Context, owner string, sub submit.Submission) error
}

// DraftStore persists unfinished forms.
type DraftStore interface {
	SaveDraft(ctx context.Context, d store.Draft) (string, error)
	DeleteDraft(ctx context.Context, id string) error
}

// Options wires the wizard to its collaborators. Any of them may be nil.
type Options struct {
	Owner       string
	Submitter   Submitter
	Drafts      DraftStore
	Draft       *store.Draft // resume from this draft
	ExportDir   string
	PickerDir   string
	OnPickerDir func(dir string)
	Now         func() time.Time
	NewID       func() string
}

// Result holds what happened during a wizard run. Saved has one entry per
// submission once Flush has run, carrying the export path or the error that
// kept it from being recorded.
type Result struct {
	Submissions []submit.Submission
	Saved       []SubmissionSavedMsg
	Cancelled   bool
}

// persistJob publishes and exports one submission exactly once, whether the
// program's command or Flush gets to it first.
type persistJob struct {
	once sync.Once
	run  func() SubmissionSavedMsg
	done SubmissionSavedMsg
}

func (j *persistJob) do() SubmissionSavedMsg {
	j.once.Do(func() { j.done = j.run() })
	return j.done
}

// stepModel is implemented by FormStep and ReviewStep.
type stepModel interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
}

// WizardModel is the BubbleTea model for the submission wizard.
type WizardModel struct {
	ctx  context.Context
	opts Options
	wiz  *submit.Wizard

	draftID    string
	formStep   *FormStep
	reviewStep *ReviewStep

	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	picker    *wizard.ImagePicker
	pickerDir string
	alert     *wizard.AlertModal

	status    string
	statusErr bool

	width  int
	height int
	result Result
	jobs   []*persistJob
}

// NewWizardModel creates the model at the first step.
func NewWizardModel(ctx context.Context, opts Options) *WizardModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	var wopts []submit.Option
	if opts.NewID != nil {
		wopts = append(wopts, submit.WithIDGenerator(opts.NewID))
	}
	m := &WizardModel{
		ctx:       ctx,
		opts:      opts,
		pickerDir: opts.PickerDir,
		alert:     wizard.NewAlertModal(),
	}
	if opts.Draft != nil {
		wopts = append(wopts, submit.WithForm(opts.Draft.Form))
		m.draftID = opts.Draft.ID
	}
	m.wiz = submit.NewWizard(wopts...)
	m.buildStep()
	return m
}

// Run creates a standalone BubbleTea program, runs the wizard and returns
// what was submitted.
func Run(ctx context.Context, opts Options) (*Result, error) {
	m := NewWizardModel(ctx, opts)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	wm, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	res := wm.Flush()
	return &res, nil
}

// Flush finishes every submission still being persisted, including those
// whose command never ran because the program quit, and returns the result.
// Call it after the program has stopped.
func (m *WizardModel) Flush() Result {
	m.result.Saved = nil
	for _, job := range m.jobs {
		m.result.Saved = append(m.result.Saved, job.do())
	}
	return m.result
}

// Result returns the submissions made so far.
func (m *WizardModel) Result() Result { return m.result }

// Init focuses the first field.
func (m *WizardModel) Init() tea.Cmd {
	return m.current().Init()
}

func (m *WizardModel) current() stepModel {
	if m.reviewStep != nil {
		return m.reviewStep
	}
	return m.formStep
}

// buildStep creates the step model for the sequencer's current step.
func (m *WizardModel) buildStep() {
	m.buttonFocused = false
	m.buttonBar = m.newButtonBar()
	if m.wiz.AtReview() {
		m.formStep = nil
		m.reviewStep = NewReviewStep(m.wiz.Form())
	} else {
		m.reviewStep = nil
		m.formStep = NewFormStep(m.wiz.View())
	}
	m.updateStepSize()
}

func (m *WizardModel) enterStep() tea.Cmd {
	m.buildStep()
	return m.current().Init()
}

// syncStep re-derives the visible fields after the form changed.
func (m *WizardModel) syncStep() {
	if m.formStep != nil {
		m.formStep.Sync(m.wiz.View())
	}
	if m.reviewStep != nil {
		m.reviewStep.Sync(m.wiz.Form())
	}
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if m.alert.IsVisible() {
			return m, m.alert.Update(msg)
		}
		if msg.String() == "ctrl+c" {
			m.closePicker()
			m.result.Cancelled = true
			return m, tea.Quit
		}
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}

		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					return m, m.current().Focus()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					return m, m.current().FocusLast()
				}
				return m, nil
			case "enter", " ", "space":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		switch msg.String() {
		case "esc":
			if m.wiz.Step() == submit.StepBasicInfo {
				m.result.Cancelled = true
				return m, tea.Quit
			}
			return m.goBack()
		case "ctrl+s":
			return m, m.saveDraft()
		}
		if m.buttonFocused {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateStepSize()
		return m, nil

	case FieldChangedMsg:
		m.applyEdits([]FieldChangedMsg{msg})
		return m, nil

	case OpenPickerMsg:
		m.closePicker()
		m.picker = wizard.NewImagePicker(msg.Slot, m.pickerDir)
		w, h := m.contentSize()
		m.picker.SetSize(w, h)
		return m, m.picker.Init()

	case wizard.DirChangedMsg:
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}
		return m, nil

	case wizard.ImagePickedMsg:
		return m, m.applyPick(msg)

	case wizard.AlertDismissedMsg:
		return m, nil

	case wizard.TabExitForwardMsg:
		m.focusButtons(true)
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.focusButtons(false)
		return m, nil

	case DraftSavedMsg:
		if msg.Err != nil {
			logger.Error("Failed to save draft: %v", msg.Err)
			m.setStatus("Could not save draft: "+msg.Err.Error(), true)
			return m, nil
		}
		m.draftID = msg.ID
		m.setStatus("Draft saved", false)
		return m, nil

	case SubmissionSavedMsg:
		if msg.Err != nil {
			logger.Error("Failed to persist submission %s: %v", msg.Submission.ID, msg.Err)
			m.setStatus("Could not save submission: "+msg.Err.Error(), true)
			return m, nil
		}
		if msg.Path != "" {
			m.setStatus("Exported to "+msg.Path, false)
		}
		return m, nil
	}

	cmd := m.current().Update(msg)
	if m.formStep != nil {
		m.applyEdits(m.formStep.TakeEdits())
	}
	return m, cmd
}

// applyEdits writes field edits into the form in order and re-syncs the
// step, all within the current Update.
func (m *WizardModel) applyEdits(edits []FieldChangedMsg) {
	if len(edits) == 0 {
		return
	}
	for _, e := range edits {
		if err := m.wiz.Set(e.Field, e.Value); err != nil {
			m.setStatus(err.Error(), true)
			continue
		}
		m.status = ""
	}
	m.syncStep()
}

func (m *WizardModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *WizardModel) focusButtons(first bool) {
	m.current().Blur()
	m.buttonFocused = true
	if first {
		m.buttonBar.FocusFirst()
	} else {
		m.buttonBar.FocusLast()
	}
}

func (m *WizardModel) closePicker() {
	if m.picker != nil {
		m.picker.Close()
		m.picker = nil
	}
}

func (m *WizardModel) applyPick(msg wizard.ImagePickedMsg) tea.Cmd {
	if m.picker != nil {
		m.pickerDir = m.picker.Dir()
		m.closePicker()
		if m.opts.OnPickerDir != nil {
			m.opts.OnPickerDir(m.pickerDir)
		}
	}
	if msg.Err != nil && !errors.Is(msg.Err, submit.ErrPickCanceled) {
		logger.Warn("Image pick for %s failed: %v", msg.Slot, msg.Err)
	}

	alert, err := m.wiz.ApplyPick(msg.Slot, msg.Image, msg.Err)
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}
	if alert != nil {
		m.alert.Show(*alert)
	}
	m.syncStep()
	return nil
}

// newButtonBar creates the Back/Next bar for the current step.
func (m *WizardModel) newButtonBar() *wizard.ButtonBar {
	nextLabel := "Next →"
	if m.wiz.AtReview() {
		nextLabel = "Submit"
	}
	bar := wizard.NewButtonBar(wizard.CreateBackNextButtons(
		m.wiz.Step() > submit.StepBasicInfo, true, nextLabel))
	bar.SetWidth(modalContentWidth)
	return bar
}

// activateButton handles button activation.
func (m *WizardModel) activateButton(btnID wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch btnID {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m.goNext()
	}
	return m, nil
}

// goBack moves to the previous step.
func (m *WizardModel) goBack() (tea.Model, tea.Cmd) {
	if !m.wiz.Retreat() {
		return m, nil
	}
	m.status = ""
	return m, m.enterStep()
}

// goNext advances, or finalizes at the review step.
func (m *WizardModel) goNext() (tea.Model, tea.Cmd) {
	if m.wiz.AtReview() {
		return m.finalize()
	}
	if !m.wiz.Advance() {
		return m, nil
	}
	m.status = ""
	return m, m.enterStep()
}

// finalize submits the form, shows the success alert and starts over.
func (m *WizardModel) finalize() (tea.Model, tea.Cmd) {
	sub, err := m.wiz.Finalize(m.opts.Now())
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	logger.Info("Submitted project %s (%q)", sub.ID, sub.Project.Title)

	m.result.Submissions = append(m.result.Submissions, sub)
	m.alert.Show(submit.SubmittedAlert)
	m.status = ""

	draftID := m.draftID
	m.draftID = ""
	return m, tea.Batch(m.enterStep(), m.persist(sub, draftID))
}

// persist publishes sub, exports it and drops the draft it came from. The
// work is tracked so Flush can complete it after the program exits.
func (m *WizardModel) persist(sub submit.Submission, draftID string) tea.Cmd {
	ctx := m.ctx
	owner := m.opts.Owner
	submitter := m.opts.Submitter
	drafts := m.opts.Drafts
	exportDir := m.opts.ExportDir

	job := &persistJob{}
	m.jobs = append(m.jobs, job)
	job.run = func() SubmissionSavedMsg {
		if submitter != nil {
			if err := submitter.Submit(ctx, owner, sub); err != nil {
				return SubmissionSavedMsg{Submission: sub, Err: err}
			}
		}
		var path string
		if exportDir != "" {
			p, err := ExportSubmission(exportDir, sub)
			if err != nil {
				return SubmissionSavedMsg{Submission: sub, Err: err}
			}
			path = p
		}
		if draftID != "" && drafts != nil {
			if err := drafts.DeleteDraft(ctx, draftID); err != nil && !errors.Is(err, store.ErrNotFound) {
				logger.Warn("Failed to delete draft %s: %v", draftID, err)
			}
		}
		return SubmissionSavedMsg{Submission: sub, Path: path}
	}
	return func() tea.Msg { return job.do() }
}

// saveDraft stores the current form under the draft ID, creating one when
// the form has not been saved before.
func (m *WizardModel) saveDraft() tea.Cmd {
	if m.opts.Drafts == nil {
		m.setStatus("Drafts are not available", true)
		return nil
	}
	ctx := m.ctx
	drafts := m.opts.Drafts
	d := store.Draft{ID: m.draftID, Owner: m.opts.Owner, Form: m.wiz.Form()}
	return func() tea.Msg {
		id, err := drafts.SaveDraft(ctx, d)
		return DraftSavedMsg{ID: id, Err: err}
	}
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()
	if m.alert.IsVisible() {
		content = m.alert.Render()
	}

	centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// contentSize returns the internal content dimensions for the modal.
func (m *WizardModel) contentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 44 {
		height = 44
	}
	// Subtract modal chrome: padding, border, title, progress, buttons, status
	height -= 14
	if height < 8 {
		height = 8
	}
	return width, height
}

func (m *WizardModel) updateStepSize() {
	w, h := m.contentSize()
	if step := m.current(); step != nil {
		step.SetSize(w, h)
	}
	if m.picker != nil {
		m.picker.SetSize(w, h)
	}
}

// renderProgress draws one segment per step, completed segments blending
// from the primary to the tertiary color.
func (m *WizardModel) renderProgress() string {
	t := theme.Current()
	current := int(m.wiz.Step())
	segments := make([]string, submit.StepCount)
	for i := range segments {
		color := t.BgSurface1
		if i <= current {
			color = theme.InterpolateColor(t.Primary, t.Tertiary, float64(i)/float64(submit.StepCount-1))
		}
		segments[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("━━━━━━━━━━━")
	}
	return strings.Join(segments, " ") + "\n" + t.S().Progress.Render(m.wiz.Progress())
}

// renderCurrentStep renders the modal for the current step or the picker.
func (m *WizardModel) renderCurrentStep() string {
	t := theme.Current()
	s := t.S()

	header := s.HeaderTitle.Render("Submit Project")
	if m.draftID != "" {
		header += s.Muted.Render("  (draft)")
	}

	var body string
	if m.picker != nil {
		body = m.picker.View()
	} else {
		body = m.current().View()
	}

	parts := []string{header, m.renderProgress(), "", body}
	if m.picker == nil {
		parts = append(parts, "", m.buttonBar.Render())
	}
	if m.status != "" {
		style := s.Success
		if m.statusErr {
			style = s.Error
		}
		parts = append(parts, "", style.Render(m.status))
	}

	return lipgloss.NewStyle().
		Width(modalWidth).
		Padding(1, modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Primary)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
