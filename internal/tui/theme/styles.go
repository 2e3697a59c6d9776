package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI and CLI output.
type Styles struct {
	HeaderTitle lipgloss.Style
	Subtitle    lipgloss.Style
	Progress    lipgloss.Style

	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Required    lipgloss.Style
	Muted       lipgloss.Style
	Value       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Price       lipgloss.Style

	Chip         lipgloss.Style
	ChipSelected lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style

	HintKey  lipgloss.Style
	HintDesc lipgloss.Style
	HintSep  lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	Verified lipgloss.Style
}
