package submitwizard

import (
	"testing"

	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/testfixtures"
	"github.com/devnexus/devnexus/internal/tui/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewStep_CompleteForm(t *testing.T) {
	r := NewReviewStep(testfixtures.WebForm())
	r.SetSize(modalContentWidth, 40)

	assert.Empty(t, r.Issues())

	view := testfixtures.Plain(r.View())
	assert.Contains(t, view, "Pixel Forge")
	assert.Contains(t, view, "Ready to Submit")
	assert.NotContains(t, view, "! ")
}

func TestReviewStep_ListsIssues(t *testing.T) {
	r := NewReviewStep(submit.NewForm())
	r.SetSize(modalContentWidth, 40)

	issues := r.Issues()
	require.NotEmpty(t, issues)

	view := testfixtures.Plain(r.View())
	for _, issue := range issues {
		assert.Contains(t, view, "! "+issue.Message)
	}
}

func TestReviewStep_Sync(t *testing.T) {
	r := NewReviewStep(submit.NewForm())
	require.NotEmpty(t, r.Issues())

	r.Sync(testfixtures.WebForm())
	assert.Empty(t, r.Issues())
}

func TestReviewStep_TabLeavesStep(t *testing.T) {
	r := NewReviewStep(testfixtures.WebForm())

	_, ok := find[wizard.TabExitForwardMsg](r.Update(key("tab")))
	assert.True(t, ok)
	_, ok = find[wizard.TabExitBackwardMsg](r.Update(key("shift+tab")))
	assert.True(t, ok)
}
