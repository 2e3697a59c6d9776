package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devnexus/devnexus/internal/logger"
)

const fileName = "ui-state.json"

// UIState holds UI preferences that carry across runs.
type UIState struct {
	Picker PickerState `json:"picker"`
	Wizard WizardState `json:"wizard"`
}

// PickerState remembers where the image picker was last opened.
type PickerState struct {
	LastDir string `json:"last_dir,omitempty"`
}

// WizardState remembers the draft the wizard last worked on.
type WizardState struct {
	LastDraftID string `json:"last_draft_id,omitempty"`
}

// DefaultUIState starts the picker in the user's home directory.
func DefaultUIState() *UIState {
	home, _ := os.UserHomeDir()
	return &UIState{Picker: PickerState{LastDir: home}}
}

// Load reads <dataDir>/ui-state.json, falling back to defaults when the file
// is missing or unreadable.
func Load(dataDir string) *UIState {
	path := filepath.Join(dataDir, fileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultUIState()
	}
	if err != nil {
		logger.Warn("reading UI state: %v", err)
		return DefaultUIState()
	}

	st := DefaultUIState()
	if err := json.Unmarshal(data, st); err != nil {
		logger.Warn("parsing UI state: %v", err)
		return DefaultUIState()
	}
	if st.Picker.LastDir != "" {
		if info, err := os.Stat(st.Picker.LastDir); err != nil || !info.IsDir() {
			st.Picker.LastDir = DefaultUIState().Picker.LastDir
		}
	}
	return st
}

// Save writes the state, creating dataDir if needed.
func Save(dataDir string, st *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
