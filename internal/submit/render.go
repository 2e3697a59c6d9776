package submit

import (
	"fmt"
	"strings"
)

// Kind tells the renderer which input to draw for a field.
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindChoice
	KindToggle
	KindImage
)

// NotSet is shown in the review for empty values.
const NotSet = "Not set"

// FieldView is one editable field of a step. Image fields carry a Slot
// instead of a Field.
type FieldView struct {
	Kind        Kind
	Field       Field
	Slot        MediaSlot
	Label       string
	Placeholder string
	Help        string
	Value       string
	Required    bool
	Options     []string
}

// SummaryRow is one read-only line of the review.
type SummaryRow struct {
	Label string
	Value string
	Price bool
}

// Notice is the static banner at the bottom of the review.
type Notice struct {
	Title string
	Body  string
}

// ReadyNotice is shown on the review step.
var ReadyNotice = Notice{
	Title: "Ready to Submit",
	Body:  "Your project will be reviewed by our team. You'll receive a notification once it's approved.",
}

// StepView is what a step shows for a given form.
type StepView struct {
	Step    Step
	Fields  []FieldView
	Summary []SummaryRow
	Notice  *Notice
}

// Render maps a step and form to the fields the step shows. It does not
// modify the form.
func Render(step Step, f Form) StepView {
	v := StepView{Step: step}
	switch step {
	case StepBasicInfo:
		v.Fields = []FieldView{
			textField(FieldTitle, "Project Title", "Enter project title", f.Title, true),
			{Kind: KindMultiline, Field: FieldDescription, Label: "Short Description",
				Placeholder: "Describe your project in 2-3 sentences", Value: f.Description, Required: true},
			{Kind: KindChoice, Field: FieldCategory, Label: "Category", Value: f.Category,
				Required: true, Options: Categories},
			textField(FieldTags, "Tags (comma-separated)", "react, typescript, tailwind", f.Tags, false),
		}
	case StepPlatform:
		v.Fields = []FieldView{{
			Kind: KindChoice, Field: FieldPlatformType, Label: "Platform Type",
			Value: string(f.PlatformType), Required: true,
			Options: []string{string(PlatformWeb), string(PlatformMobile)},
		}}
		if f.PlatformType == PlatformMobile {
			v.Fields = append(v.Fields,
				textField(FieldAppStoreLink, "App Store Link", "https://apps.apple.com/...", f.AppStoreLink, false),
				textField(FieldPlayStoreLink, "Play Store Link", "https://play.google.com/...", f.PlayStoreLink, false),
			)
		} else {
			v.Fields = append(v.Fields,
				textField(FieldWebsiteURL, "Website URL", "https://example.com", f.WebsiteURL, true))
		}
	case StepMedia:
		v.Fields = append(v.Fields, FieldView{
			Kind: KindImage, Slot: ThumbnailSlot, Label: "Thumbnail Image",
			Help: "PNG, JPG up to 5MB", Value: f.Thumbnail.Name(), Required: true,
		})
		for i := 0; i < MaxScreenshots; i++ {
			v.Fields = append(v.Fields, FieldView{
				Kind: KindImage, Slot: ScreenshotSlot(i),
				Label: fmt.Sprintf("Screenshot %d", i+1), Help: "Optional",
				Value: f.Screenshots[i].Name(),
			})
		}
	case StepMarketplace:
		v.Fields = []FieldView{{
			Kind: KindToggle, Field: FieldForSale, Label: "List for Sale",
			Help:  "Make your project available in the marketplace",
			Value: fmt.Sprint(f.ForSale),
		}}
		if f.ForSale {
			v.Fields = append(v.Fields,
				textField(FieldPrice, "Price (USD)", "0", f.Price, true),
				textField(FieldContactEmail, "Contact Email", "your@email.com", f.ContactEmail, true),
				textField(FieldWhatsappNumber, "WhatsApp Number", "+1234567890", f.WhatsappNumber, false),
			)
		}
	case StepReview:
		v.Summary = ReviewRows(f)
		notice := ReadyNotice
		v.Notice = &notice
	}
	return v
}

func textField(field Field, label, placeholder, value string, required bool) FieldView {
	return FieldView{Kind: KindText, Field: field, Label: label, Placeholder: placeholder, Value: value, Required: required}
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSet
	}
	return s
}

// ReviewRows summarizes every field of the form. Empty values read
// "Not set", the platform is shown as stored, and sale rows only appear when
// the project is for sale.
func ReviewRows(f Form) []SummaryRow {
	rows := []SummaryRow{
		{Label: "Title", Value: orNotSet(f.Title)},
		{Label: "Description", Value: orNotSet(f.Description)},
		{Label: "Category", Value: orNotSet(f.Category)},
		{Label: "Tags", Value: orNotSet(strings.Join(f.TagList(), ", "))},
		{Label: "Platform", Value: string(f.PlatformType)},
	}
	if f.PlatformType == PlatformMobile {
		rows = append(rows,
			SummaryRow{Label: "App Store", Value: orNotSet(f.AppStoreLink)},
			SummaryRow{Label: "Play Store", Value: orNotSet(f.PlayStoreLink)},
		)
	} else {
		rows = append(rows, SummaryRow{Label: "Website", Value: orNotSet(f.WebsiteURL)})
	}
	rows = append(rows,
		SummaryRow{Label: "Thumbnail", Value: orNotSet(f.Thumbnail.Name())},
		SummaryRow{Label: "Screenshots", Value: fmt.Sprintf("%d of %d", f.ScreenshotCount(), MaxScreenshots)},
	)
	if f.ForSale {
		rows = append(rows,
			SummaryRow{Label: "Price", Value: "$" + f.Price, Price: true},
			SummaryRow{Label: "Contact Email", Value: orNotSet(f.ContactEmail)},
			SummaryRow{Label: "WhatsApp", Value: orNotSet(f.WhatsappNumber)},
		)
	}
	return rows
}

// ReviewMarkdown renders the review summary as a markdown document.
func ReviewMarkdown(f Form) string {
	var b strings.Builder
	b.WriteString("# Project Summary\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	for _, row := range ReviewRows(f) {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Label, escapeCell(row.Value))
	}
	fmt.Fprintf(&b, "\n## %s\n\n%s\n", ReadyNotice.Title, ReadyNotice.Body)
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// SubmissionMarkdown renders a finalized submission as a standalone document.
func SubmissionMarkdown(sub Submission) string {
	var b strings.Builder
	title := sub.Project.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled project"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if desc := strings.TrimSpace(sub.Project.Description); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| ID | %s |\n", sub.ID)
	fmt.Fprintf(&b, "| Status | %s |\n", sub.Status)
	fmt.Fprintf(&b, "| Submitted | %s |\n", sub.SubmittedAt.UTC().Format("2006-01-02 15:04 MST"))
	for _, row := range ReviewRows(sub.Project) {
		if row.Label == "Title" || row.Label == "Description" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", row.Label, escapeCell(row.Value))
	}
	if sub.Project.ScreenshotCount() > 0 {
		b.WriteString("\n## Screenshots\n\n")
		for i, img := range sub.Project.Screenshots {
			if img.IsSet() {
				fmt.Fprintf(&b, "%d. %s\n", i+1, img.Name())
			}
		}
	}
	return b.String()
}
