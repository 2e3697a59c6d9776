package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/project"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/markup"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

var submissionsShowFlags struct {
	json bool
}

var submissionsStatusFlags struct {
	reason string
}

var submissionsCmd = &cobra.Command{
	Use:     "submissions",
	Aliases: []string{"subs"},
	Short:   "Inspect and manage your submitted projects",
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSubmissionsList,
}

var submissionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one submission",
	Long: `Show one submission.

The ID may be any unique prefix of the submission ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmissionsShow,
}

var submissionsDiffCmd = &cobra.Command{
	Use:   "diff <id> <id>",
	Short: "Compare two submissions",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubmissionsDiff,
}

var submissionsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move a submission to another review status",
	Long: `Move a submission to another review status.

Pending submissions can be approved or rejected. Approved submissions that
are for sale can move to marketplace. Anything not rejected can be
withdrawn.`,
	Args: cobra.ExactArgs(2),
	RunE: runSubmissionsStatus,
}

func init() {
	submissionsShowCmd.Flags().BoolVar(&submissionsShowFlags.json, "json", false, "Print the stored JSON")
	submissionsStatusCmd.Flags().StringVar(&submissionsStatusFlags.reason, "reason", "", "Reason recorded with the change")

	submissionsCmd.AddCommand(submissionsListCmd)
	submissionsCmd.AddCommand(submissionsShowCmd)
	submissionsCmd.AddCommand(submissionsDiffCmd)
	submissionsCmd.AddCommand(submissionsStatusCmd)
}

// withProjects opens the env, checks the session and starts the event store
// before calling fn.
func withProjects(cmd *cobra.Command, fn func(e *env, projects *project.Store, state *project.State) error) error {
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

	projects, cleanup, err := e.openProjects(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := projects.LoadState(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to load submissions: %w", err)
	}
	return fn(e, projects, state)
}

func runSubmissionsList(cmd *cobra.Command, args []string) error {
	return withProjects(cmd, func(e *env, _ *project.Store, state *project.State) error {
		list := state.List()
		if len(list) == 0 {
			_, _ = fmt.Fprintln(e.out, theme.Current().S().Muted.Render("No submissions yet. Run devnexus submit to add one."))
			return nil
		}

		rows := make([][]string, len(list))
		for i, p := range list {
			price := "-"
			if p.Project.ForSale && p.Project.Price != "" {
				price = "$" + p.Project.Price
			}
			rows[i] = []string{shortID(p.ID), p.Project.Title, string(p.Project.PlatformType), price,
				statusLabel(p.Status), p.SubmittedAt.Local().Format("2006-01-02 15:04")}
		}
		printSection(e.out, "Submissions", renderTable(
			[]string{"ID", "Title", "Platform", "Price", "Status", "Submitted"}, rows,
			func(row, col int) *lipgloss.Style {
				if col != 4 {
					return nil
				}
				st := theme.Current().StatusStyle(string(list[row].Status)).Padding(0, 1)
				return &st
			}))
		return nil
	})
}

func runSubmissionsShow(cmd *cobra.Command, args []string) error {
	return withProjects(cmd, func(e *env, _ *project.Store, state *project.State) error {
		p, err := state.Find(args[0])
		if err != nil {
			return err
		}

		if submissionsShowFlags.json {
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(e.out, markup.Highlight(string(data), p.ID+".json"))
			return nil
		}

		s := theme.Current().S()
		header := s.Label.Render("Status ") + theme.Current().StatusStyle(string(p.Status)).Render(statusLabel(p.Status))
		if p.Reason != "" {
			header += s.Muted.Render(" (" + p.Reason + ")")
		}
		_, _ = fmt.Fprintln(e.out, header)
		_, _ = fmt.Fprintln(e.out, markup.RenderMarkdown(submit.SubmissionMarkdown(p.Submission), 100))
		return nil
	})
}

func runSubmissionsDiff(cmd *cobra.Command, args []string) error {
	return withProjects(cmd, func(e *env, _ *project.Store, state *project.State) error {
		a, err := state.Find(args[0])
		if err != nil {
			return err
		}
		b, err := state.Find(args[1])
		if err != nil {
			return err
		}

		diff := markup.Diff(shortID(a.ID)+".md", shortID(b.ID)+".md",
			submit.SubmissionMarkdown(a.Submission), submit.SubmissionMarkdown(b.Submission))
		if diff == "" {
			_, _ = fmt.Fprintln(e.out, theme.Current().S().Muted.Render("Submissions are identical."))
			return nil
		}
		_, _ = fmt.Fprintln(e.out, markup.ColorDiff(diff))
		return nil
	})
}

func runSubmissionsStatus(cmd *cobra.Command, args []string) error {
	to, err := parseStatus(args[1])
	if err != nil {
		return err
	}
	return withProjects(cmd, func(e *env, projects *project.Store, state *project.State) error {
		p, err := state.Find(args[0])
		if err != nil {
			return err
		}
		updated, err := projects.SetStatus(cmd.Context(), state.Owner, p.ID, to, submissionsStatusFlags.reason)
		if err != nil {
			return err
		}
		s := theme.Current().S()
		_, _ = fmt.Fprintf(e.out, "%s %s is now %s\n", s.Success.Render("✓"), updated.Project.Title,
			theme.Current().StatusStyle(string(to)).Render(statusLabel(to)))
		return nil
	})
}

// parseStatus accepts the review statuses a submission can be moved to.
func parseStatus(s string) (submit.Status, error) {
	st := submit.Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case submit.StatusApproved, submit.StatusRejected, submit.StatusMarketplace, submit.StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q (want approved, rejected, marketplace or withdrawn)", s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
