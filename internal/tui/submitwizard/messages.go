package submitwizard

import "github.com/devnexus/devnexus/internal/submit"

// FieldChangedMsg is sent when a step edits a form field.
type FieldChangedMsg struct {
	Field submit.Field
	Value string
}

// OpenPickerMsg asks the wizard to open the image picker for a slot.
type OpenPickerMsg struct {
	Slot submit.MediaSlot
}

// DescriptionEditedMsg is sent when the external editor returns.
type DescriptionEditedMsg struct {
	Content string
}

// DraftSavedMsg reports the outcome of ctrl+s.
type DraftSavedMsg struct {
	ID  string
	Err error
}

// SubmissionSavedMsg reports the outcome of persisting a finalized submission.
type SubmissionSavedMsg struct {
	Submission submit.Submission
	Path       string
	Err        error
}
