package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/project"
	"github.com/devnexus/devnexus/internal/state"
	"github.com/devnexus/devnexus/internal/store"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/submitwizard"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	draft       string
	batch       bool
	set         []string
	thumbnail   string
	screenshots []string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a project through the step-by-step wizard",
	Long: `Submit a project through the step-by-step wizard.

The wizard walks through Basic Info, Platform, Media, Marketplace and Review.
Press ctrl+s on any step to save a draft and --draft <id> to resume it.

With --batch the wizard is skipped: fields come from --set name=value
(title, description, category, tags, platformType, websiteUrl, appStoreLink,
playStoreLink, forSale, price, contactEmail, whatsappNumber) and images from
--thumbnail and --screenshot.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitFlags.draft, "draft", "", "Resume the draft with this ID")
	submitCmd.Flags().BoolVar(&submitFlags.batch, "batch", false, "Submit without the interactive wizard")
	submitCmd.Flags().StringArrayVar(&submitFlags.set, "set", nil, "Set a field, as name=value (batch mode)")
	submitCmd.Flags().StringVar(&submitFlags.thumbnail, "thumbnail", "", "Thumbnail image path (batch mode)")
	submitCmd.Flags().StringArrayVar(&submitFlags.screenshots, "screenshot", nil,
		fmt.Sprintf("Screenshot image path, up to %d (batch mode)", submit.MaxScreenshots))
}

func runSubmit(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	_, owner, err := e.session(ctx)
	if err != nil {
		return err
	}

	var draft *store.Draft
	if submitFlags.draft != "" {
		d, err := e.db.GetDraft(ctx, submitFlags.draft)
		if errors.Is(err, store.ErrNotFound) || (err == nil && d.Owner != owner) {
			return fmt.Errorf("no draft %q", submitFlags.draft)
		}
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
		draft = &d
	}

	projects, cleanup, err := e.openProjects(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if submitFlags.batch {
		return runBatchSubmit(ctx, e, projects, owner, draft)
	}

	uiState := state.Load(e.cfg.DataDir)
	result, err := submitwizard.Run(ctx, submitwizard.Options{
		Owner:     owner,
		Submitter: projects,
		Drafts:    e.db,
		Draft:     draft,
		ExportDir: e.cfg.ExportDir,
		PickerDir: uiState.Picker.LastDir,
		OnPickerDir: func(dir string) {
			uiState.Picker.LastDir = dir
			if err := state.Save(e.cfg.DataDir, uiState); err != nil {
				logger.Warn("Failed to save UI state: %v", err)
			}
		},
		NewID: uuid.NewString,
	})
	if err != nil {
		return err
	}

	s := theme.Current().S()
	if len(result.Saved) == 0 {
		_, _ = fmt.Fprintln(e.out, s.Muted.Render("Nothing submitted."))
		return nil
	}
	var failed int
	for _, saved := range result.Saved {
		sub := saved.Submission
		if saved.Err != nil {
			failed++
			_, _ = fmt.Fprintf(e.out, "%s %s %s\n", s.Error.Render("✗"), sub.Project.Title, s.Muted.Render(saved.Err.Error()))
			continue
		}
		_, _ = fmt.Fprintf(e.out, "%s %s %s\n", s.Success.Render("✓"), sub.Project.Title, s.Muted.Render(sub.ID))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d submissions were not recorded", failed, len(result.Saved))
	}
	return nil
}

// runBatchSubmit fills a wizard from flags, walks it to the review step and
// finalizes it the way the interactive wizard does.
func runBatchSubmit(ctx context.Context, e *env, projects *project.Store, owner string, draft *store.Draft) error {
	opts := []submit.Option{submit.WithIDGenerator(uuid.NewString)}
	if draft != nil {
		opts = append(opts, submit.WithForm(draft.Form))
	}
	wiz := submit.NewWizard(opts...)

	for _, kv := range submitFlags.set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected name=value", kv)
		}
		field, err := submit.ParseField(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if err := wiz.Set(field, value); err != nil {
			return fmt.Errorf("--set %s: %w", name, err)
		}
	}

	if len(submitFlags.screenshots) > submit.MaxScreenshots {
		return fmt.Errorf("at most %d screenshots", submit.MaxScreenshots)
	}
	picks := make(map[submit.MediaSlot]string)
	if submitFlags.thumbnail != "" {
		picks[submit.ThumbnailSlot] = submitFlags.thumbnail
	}
	for i, path := range submitFlags.screenshots {
		picks[submit.ScreenshotSlot(i)] = path
	}
	for slot, path := range picks {
		alert, err := wiz.Pick(ctx, submit.FilePicker(path), slot)
		if err != nil {
			return err
		}
		if alert != nil {
			return fmt.Errorf("%s: %s", alert.Message, path)
		}
	}

	s := theme.Current().S()
	for _, issue := range wiz.Form().Check() {
		_, _ = fmt.Fprintln(e.out, s.Muted.Render("! "+issue.Message))
	}

	for !wiz.AtReview() {
		wiz.Advance()
	}
	sub, err := wiz.Finalize(time.Now())
	if err != nil {
		return err
	}
	if err := projects.Submit(ctx, owner, sub); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	logger.Info("Submitted project %s (%q)", sub.ID, sub.Project.Title)

	if e.cfg.ExportDir != "" {
		path, err := submitwizard.ExportSubmission(e.cfg.ExportDir, sub)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(e.out, s.Muted.Render("Exported to "+path))
	}
	if draft != nil {
		if err := e.db.DeleteDraft(ctx, draft.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			logger.Warn("Failed to delete draft %s: %v", draft.ID, err)
		}
	}

	_, _ = fmt.Fprintf(e.out, "%s %s\n%s\n", s.Success.Render("✓ "+submit.SubmittedAlert.Title), sub.ID, submit.SubmittedAlert.Message)
	return nil
}
