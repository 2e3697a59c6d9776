package submit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotAtReview is returned when finalizing before the review step.
var ErrNotAtReview = errors.New("submission can only be finalized from the review step")

// Status is the review state of a submitted project.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusMarketplace Status = "marketplace"
	StatusWithdrawn   Status = "withdrawn"
)

// Submission is the payload produced by finalizing the wizard.
type Submission struct {
	ID          string    `json:"id"`
	Project     Form      `json:"project"`
	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Wizard owns one form and its sequencer. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Wizard struct {
	form  Form
	seq   Sequencer
	newID func() string
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithIDGenerator replaces the submission ID source.
func WithIDGenerator(fn func() string) Option {
	return func(w *Wizard) { w.newID = fn }
}

// WithForm starts the wizard from an existing form, such as a saved draft.
func WithForm(f Form) Option {
	return func(w *Wizard) { w.form = f }
}

// NewWizard creates a wizard at the first step with an empty form.
func NewWizard(opts ...Option) *Wizard {
	w := &Wizard{form: NewForm(), newID: uuid.NewString}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Form returns a copy of the current form.
func (w *Wizard) Form() Form { return w.form }

// Step returns the active step.
func (w *Wizard) Step() Step { return w.seq.Current() }

// Progress renders the step counter.
func (w *Wizard) Progress() string { return w.seq.Progress() }

// View renders the active step.
func (w *Wizard) View() StepView { return Render(w.seq.Current(), w.form) }

// Set updates one field.
func (w *Wizard) Set(field Field, value string) error {
	next, err := w.form.Update(field, value)
	if err != nil {
		return err
	}
	w.form = next
	return nil
}

// Replace swaps in a form produced by the typed With* helpers.
func (w *Wizard) Replace(f Form) { w.form = f }

// Advance moves to the next step.
func (w *Wizard) Advance() bool { return w.seq.Advance() }

// Retreat moves to the previous step.
func (w *Wizard) Retreat() bool { return w.seq.Retreat() }

// AtReview reports whether Finalize is available.
func (w *Wizard) AtReview() bool { return w.seq.AtReview() }

// Finalize packages the form into a pending submission, then resets the form
// to its defaults and the sequencer to the first step. Completeness is not
// checked.
func (w *Wizard) Finalize(now time.Time) (Submission, error) {
	if !w.seq.AtReview() {
		return Submission{}, ErrNotAtReview
	}
	sub := Submission{
		ID:          w.newID(),
		Project:     w.form.Payload(),
		Status:      StatusPending,
		SubmittedAt: now.UTC(),
	}
	w.Reset()
	return sub, nil
}

// Reset discards the form and returns to the first step.
func (w *Wizard) Reset() {
	w.form = NewForm()
	w.seq.Reset()
}

// ApplyPick records the outcome of an image pick into slot. A cancel (or an
// empty image) changes nothing; a failure leaves the form unchanged and
// returns PickFailedAlert; a success overwrites only the target slot.
func (w *Wizard) ApplyPick(slot MediaSlot, img Image, pickErr error) (*Alert, error) {
	if errors.Is(pickErr, ErrPickCanceled) {
		return nil, nil
	}
	if pickErr != nil {
		alert := PickFailedAlert
		return &alert, nil
	}
	if !img.IsSet() {
		return nil, nil
	}
	next, err := w.form.WithImage(slot, img)
	if err != nil {
		return nil, err
	}
	w.form = next
	return nil, nil
}

// Pick runs picker synchronously and applies its result to slot.
func (w *Wizard) Pick(ctx context.Context, picker ImagePicker, slot MediaSlot) (*Alert, error) {
	img, err := picker.Pick(ctx)
	return w.ApplyPick(slot, img, err)
}
