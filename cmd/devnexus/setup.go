package main

import (
	"fmt"
	"os"

	"github.com/devnexus/devnexus/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project   bool
	force     bool
	dataDir   string
	exportDir string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create devnexus configuration file",
	Long: `Create a devnexus configuration file with sensible defaults.

By default, creates a global config at ~/.config/devnexus/devnexus.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&setupFlags.dataDir, "data-dir", "", "Directory for the database and event store")
	setupCmd.Flags().StringVar(&setupFlags.exportDir, "export-dir", "", "Directory submissions are exported to")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()
	if setupFlags.dataDir != "" {
		cfg.DataDir = setupFlags.dataDir
	}
	if setupFlags.exportDir != "" {
		cfg.ExportDir = setupFlags.exportDir
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'devnexus login' and then 'devnexus submit' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
