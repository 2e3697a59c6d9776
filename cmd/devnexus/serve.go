package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/mcpserver"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	port int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and submissions as MCP tools",
	Long: `Serve the catalog and submissions as MCP tools.

Starts a streamable HTTP MCP server on localhost exposing discover_apps,
marketplace_items, buy_request, list_submissions and submit_project.
Submissions made through it are filed under the signed-in account.
Stop it with ctrl+c.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", 0, "Port to listen on (default from config, 0 for any free port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, owner, err := e.session(ctx)
	if err != nil {
		return err
	}

	projects, cleanup, err := e.openProjects(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	port := e.cfg.ServePort
	if cmd.Flags().Changed("port") {
		port = serveFlags.port
	}

	srv := mcpserver.New(mcpserver.Options{
		Catalog:  e.catalog,
		Projects: projects,
		Owner:    owner,
		Port:     port,
	})
	if _, err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	defer func() {
		if err := srv.Stop(); err != nil {
			logger.Warn("Error stopping MCP server: %v", err)
		}
	}()

	s := theme.Current().S()
	_, _ = fmt.Fprintf(e.out, "%s %s\n", s.Success.Render("MCP server listening on"), srv.URL())
	_, _ = fmt.Fprintln(e.out, s.Muted.Render("Press ctrl+c to stop."))

	<-ctx.Done()
	logger.Info("Shutting down MCP server")
	return nil
}
