package main

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/catalog"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/project"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

var profileFlags struct {
	tab string
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your account and projects",
	Long: `Show your account and projects.

Projects are grouped in the tabs Draft, Pending, Approved and Marketplace.
Drafts saved from the submit wizard appear under Draft; your submissions
appear under the tab matching their review status.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVarP(&profileFlags.tab, "tab", "t", catalog.DefaultProfileTab,
		"One of: "+strings.Join(catalog.ProfileTabs, ", "))
}

func runProfile(cmd *cobra.Command, args []string) error {
	tab, err := catalog.ParseProfileTab(profileFlags.tab)
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	sess, owner, err := e.session(ctx)
	if err != nil {
		return err
	}

	snap, err := e.catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	projects := append([]catalog.UserProject(nil), snap.Projects...)
	projects = append(projects, submittedProjects(ctx, e, owner)...)
	projects = append(projects, draftProjects(ctx, e, owner)...)

	s := theme.Current().S()
	_, _ = fmt.Fprintf(e.out, "%s\n%s\n\n", s.HeaderTitle.Render(sess.User.Name), s.Muted.Render(sess.User.Email))

	var tabs []string
	for _, name := range catalog.ProfileTabs {
		label := fmt.Sprintf("%s (%d)", name, catalog.CountStatus(projects, name))
		if name == tab {
			tabs = append(tabs, s.ChipSelected.Render(label))
		} else {
			tabs = append(tabs, s.Chip.Render(label))
		}
	}
	_, _ = fmt.Fprintln(e.out, strings.Join(tabs, " "))
	_, _ = fmt.Fprintln(e.out)

	shown := catalog.FilterProjects(projects, tab)
	if len(shown) == 0 {
		_, _ = fmt.Fprintln(e.out, s.Muted.Render("No "+strings.ToLower(tab)+" projects."))
		return nil
	}

	rows := make([][]string, len(shown))
	for i, p := range shown {
		date := "-"
		if !p.SubmittedAt.IsZero() {
			date = p.SubmittedAt.Format("2006-01-02")
		}
		rows[i] = []string{p.ID, p.Title, p.Category, p.PlatformType, p.Status, date}
	}
	_, _ = fmt.Fprintln(e.out, renderTable([]string{"ID", "Title", "Category", "Platform", "Status", "Date"}, rows,
		func(row, col int) *lipgloss.Style {
			if col != 4 {
				return nil
			}
			st := theme.Current().StatusStyle(shown[row].Status).Padding(0, 1)
			return &st
		}))
	return nil
}

// submittedProjects lists the owner's submissions from the event store. A
// store that cannot be opened only hides them.
func submittedProjects(ctx context.Context, e *env, owner string) []catalog.UserProject {
	projects, cleanup, err := e.openProjects(ctx)
	if err != nil {
		logger.Warn("Skipping submissions on profile: %v", err)
		return nil
	}
	defer cleanup()

	list, err := projects.List(ctx, owner)
	if err != nil {
		logger.Warn("Skipping submissions on profile: %v", err)
		return nil
	}
	out := make([]catalog.UserProject, 0, len(list))
	for _, p := range list {
		out = append(out, userProject(p))
	}
	return out
}

func userProject(p *project.Project) catalog.UserProject {
	return catalog.UserProject{
		ID:           p.ID,
		Title:        p.Project.Title,
		Description:  p.Project.Description,
		Status:       statusLabel(p.Status),
		Thumbnail:    p.Project.Thumbnail.URI,
		Category:     p.Project.Category,
		PlatformType: string(p.Project.PlatformType),
		SubmittedAt:  p.SubmittedAt,
	}
}

func draftProjects(ctx context.Context, e *env, owner string) []catalog.UserProject {
	drafts, err := e.db.ListDrafts(ctx, owner)
	if err != nil {
		logger.Warn("Skipping drafts on profile: %v", err)
		return nil
	}
	out := make([]catalog.UserProject, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, catalog.UserProject{
			ID:           d.ID,
			Title:        d.Title(),
			Description:  d.Form.Description,
			Status:       statusLabel(submit.StatusDraft),
			Category:     d.Form.Category,
			PlatformType: string(d.Form.PlatformType),
			SubmittedAt:  d.UpdatedAt,
		})
	}
	return out
}

// statusLabel capitalizes a status the way the profile tabs name it.
func statusLabel(st submit.Status) string {
	s := string(st)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
