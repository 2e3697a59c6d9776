package submitwizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/gosimple/slug"
)

const (
	submissionsMarker = "<!-- SUBMISSIONS -->"
	tableHeader       = "| Project | Category | Submitted |"
	tableSep          = "|---------|----------|-----------|"
)

// ExportSubmission writes sub as markdown into dir and indexes it in the
// README. Returns the path of the written file.
func ExportSubmission(dir string, sub submit.Submission) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name, err := freeName(dir, slugFor(sub.Project.Title))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	logger.Debug("Writing submission %s to %s", sub.ID, path)
	if err := os.WriteFile(path, []byte(submit.SubmissionMarkdown(sub)), 0644); err != nil {
		return "", fmt.Errorf("failed to write submission file: %w", err)
	}

	readmePath := filepath.Join(dir, "README.md")
	if err := updateREADME(readmePath, name, sub); err != nil {
		return "", fmt.Errorf("failed to update README: %w", err)
	}
	return path, nil
}

func slugFor(title string) string {
	s := slug.Make(title)
	if s == "" {
		s = "untitled-project"
	}
	return s
}

// freeName returns base.md, or base-2.md, base-3.md ... when taken.
func freeName(dir, base string) (string, error) {
	for n := 1; n < 1000; n++ {
		name := base + ".md"
		if n > 1 {
			name = fmt.Sprintf("%s-%d.md", base, n)
		}
		_, err := os.Stat(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("too many submissions named %s", base)
}

// updateREADME adds a row for the submission, creating the README or the
// table when missing. New rows go directly under the table header.
func updateREADME(readmePath, filename string, sub submit.Submission) error {
	title := sub.Project.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled project"
	}
	if r := []rune(title); len(r) > 100 {
		title = string(r[:97]) + "..."
	}
	category := sub.Project.Category
	if category == "" {
		category = submit.NotSet
	}

	newRow := fmt.Sprintf("| [%s](%s) | %s | %s |",
		escapePipes(title), filename, escapePipes(category), sub.SubmittedAt.UTC().Format("2006-01-02"))

	var content string
	existing, err := os.ReadFile(readmePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read README: %w", err)
		}
		content = createNewREADME(newRow)
	} else {
		content = insertRow(string(existing), newRow)
	}

	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func createNewREADME(newRow string) string {
	return fmt.Sprintf(`# Submissions

Projects submitted to DevNexus.

%s

%s
%s
%s
`, submissionsMarker, tableHeader, tableSep, newRow)
}

// insertRow places newRow under the table that follows the marker. Without
// a marker the marker and table are appended to the end.
func insertRow(content, newRow string) string {
	lines := strings.Split(content, "\n")

	markerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == submissionsMarker {
			markerIdx = i
			break
		}
	}

	if markerIdx == -1 {
		if strings.TrimSpace(content) == "" {
			content = ""
		} else {
			if !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			content += "\n"
		}
		return content + submissionsMarker + "\n\n" + tableHeader + "\n" + tableSep + "\n" + newRow + "\n"
	}

	insertIdx := markerIdx + 1
	for insertIdx < len(lines) && strings.TrimSpace(lines[insertIdx]) == "" {
		insertIdx++
	}

	var block []string
	if insertIdx < len(lines) && strings.TrimSpace(lines[insertIdx]) == tableHeader {
		insertIdx++
		if insertIdx < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[insertIdx]), "|--") {
			insertIdx++
		}
		block = []string{newRow}
	} else {
		block = []string{"", tableHeader, tableSep, newRow}
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:insertIdx]...)
	out = append(out, block...)
	out = append(out, lines[insertIdx:]...)
	return strings.Join(out, "\n")
}
