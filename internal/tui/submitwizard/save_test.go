package submitwizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission(title string) submit.Submission {
	form := testfixtures.WebForm()
	form.Title = title
	return submit.Submission{
		ID:          "sub-1",
		Project:     form.Payload(),
		Status:      submit.StatusPending,
		SubmittedAt: testfixtures.FixedTime,
	}
}

func TestSlugFor(t *testing.T) {
	assert.Equal(t, "pixel-forge", slugFor("Pixel Forge"))
	assert.Equal(t, "untitled-project", slugFor(""))
	assert.Equal(t, "untitled-project", slugFor("!!!"))
}

func TestFreeName(t *testing.T) {
	dir := t.TempDir()

	name, err := freeName(dir, "forge")
	require.NoError(t, err)
	assert.Equal(t, "forge.md", name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge.md"), nil, 0644))
	name, err = freeName(dir, "forge")
	require.NoError(t, err)
	assert.Equal(t, "forge-2.md", name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge-2.md"), nil, 0644))
	name, err = freeName(dir, "forge")
	require.NoError(t, err)
	assert.Equal(t, "forge-3.md", name)
}

func TestExportSubmission(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := ExportSubmission(dir, submission("Pixel Forge"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pixel-forge.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, submit.SubmissionMarkdown(submission("Pixel Forge")), string(data))

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, `# Submissions

Projects submitted to DevNexus.

<!-- SUBMISSIONS -->

| Project | Category | Submitted |
|---------|----------|-----------|
| [Pixel Forge](pixel-forge.md) | Developer Tools | 2026-03-14 |
`, string(readme))
}

func TestExportSubmission_SameTitleTwice(t *testing.T) {
	dir := t.TempDir()

	_, err := ExportSubmission(dir, submission("Pixel Forge"))
	require.NoError(t, err)
	path, err := ExportSubmission(dir, submission("Pixel Forge"))
	require.NoError(t, err)
	assert.Equal(t, "pixel-forge-2.md", filepath.Base(path))

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	lines := strings.Split(string(readme), "\n")
	sep := -1
	for i, line := range lines {
		if line == tableSep {
			sep = i
		}
	}
	require.NotEqual(t, -1, sep)
	assert.Equal(t, "| [Pixel Forge](pixel-forge-2.md) | Developer Tools | 2026-03-14 |", lines[sep+1], "newest row first")
	assert.Equal(t, "| [Pixel Forge](pixel-forge.md) | Developer Tools | 2026-03-14 |", lines[sep+2])
}

func TestUpdateREADME_EscapesAndTruncates(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")

	sub := submission("A|B " + strings.Repeat("x", 120))
	sub.Project.Category = ""
	require.NoError(t, updateREADME(readme, "a-b.md", sub))

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `[A\|B `)
	assert.Contains(t, content, "...](a-b.md)")
	assert.Contains(t, content, "| Not set |")
}

func TestInsertRow(t *testing.T) {
	row := "| [X](x.md) | Social | 2026-03-14 |"

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no marker appends table",
			content: "# My Projects\n",
			want:    "# My Projects\n\n<!-- SUBMISSIONS -->\n\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n",
		},
		{
			name:    "marker without table",
			content: "# My Projects\n\n<!-- SUBMISSIONS -->\n\nFooter\n",
			want:    "# My Projects\n\n<!-- SUBMISSIONS -->\n\n\n" + tableHeader + "\n" + tableSep + "\n" + row + "\nFooter\n",
		},
		{
			name:    "existing table",
			content: "<!-- SUBMISSIONS -->\n\n" + tableHeader + "\n" + tableSep + "\n| [Y](y.md) | Social | 2026-03-01 |\n",
			want:    "<!-- SUBMISSIONS -->\n\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n| [Y](y.md) | Social | 2026-03-01 |\n",
		},
		{
			name:    "empty file",
			content: "",
			want:    "<!-- SUBMISSIONS -->\n\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertRow(tt.content, row))
		})
	}
}
