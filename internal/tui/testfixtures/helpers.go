package testfixtures

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent golden files across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Flag for updating golden files (shared across all tests)
var UpdateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual output with golden file.
// Use -update flag to regenerate golden files.
func CompareGolden(t *testing.T, goldenPath, actual string) {
	t.Helper()

	if *UpdateGolden {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if actual != string(expected) {
		t.Errorf("output does not match golden file %s\n\nExpected:\n%s\n\nActual:\n%s",
			goldenPath, string(expected), actual)
	}
}

// Plain strips ANSI sequences so assertions see only visible text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// RenderScreen draws content onto a canvas of the canonical test size and
// returns the visible text.
func RenderScreen(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: TestTermWidth, Y: TestTermHeight},
	})
	return Plain(canvas.Render())
}

// Lines returns the non-blank lines of s with trailing spaces removed.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(Plain(s), "\n") {
		line = strings.TrimRight(line, " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
