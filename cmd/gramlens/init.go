package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gramlens/gramlens/internal/config"
)

//go:embed templates/gramlens.yaml
var rulesTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gramlens rules file",
		Long: `Initialize creates a new .gramlens rules file in the current directory.

The generated file includes:
- The default output locale setting
- Commented examples for banned phrases and suppressed metrics
- Commented examples for per-account rule overrides

Examples:
  # Create .gramlens in current directory
  gramlens init

  # Create rules file at a specific path
  gramlens init -o myrules.yaml

  # Force overwrite existing file
  gramlens init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultRulesFile,
		"Output file path for the rules file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing rules file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("rules file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := rulesTemplate.ReadFile("templates/gramlens.yaml")
	if err != nil {
		return fmt.Errorf("failed to read rules template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write rules file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	fmt.Printf("Created rules file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure sanitization rules such as:")
	fmt.Println("  - The output locale (Turkish or English)")
	fmt.Println("  - Extra banned template phrases")
	fmt.Println("  - Metrics to suppress globally or per account")

	return nil
}
