package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▄ █▀▀ █ █ █▄ █ █▀▀ ▀▄▀ █ █ █▀▀"
	logoText2 = "█▄▀ ██▄ ▀▄▀ █ ▀█ ██▄ █ █ █▄█ ▄██"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootFlags struct {
	noColor bool
}

var rootCmd = &cobra.Command{
	Use:   "devnexus",
	Short: "Discover, buy and submit developer projects from the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Tertiary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Tertiary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

devnexus is a terminal client for the DevNexus project showcase. Browse the
discover feed and the marketplace, contact sellers, and submit your own
projects through a step-by-step wizard. Submissions are kept in an embedded
NATS JetStream log; drafts and the sign-in session live in a local SQLite
database.`

	rootCmd.PersistentFlags().BoolVar(&rootFlags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(submissionsCmd)
	rootCmd.AddCommand(serveCmd)
}
