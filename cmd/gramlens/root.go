// Package main provides the entry point for the gramlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gramlens.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gramlens",
		Short: "Sanitize raw Instagram analysis payloads into clean reports",
		Long: `gramlens normalizes raw analysis payloads from the upstream multi-agent
analysis service into display-ready reports.

It strips internal variable leaks and template phrases, parses foreign
serialization formats, distinguishes "unavailable" from a real zero, and
applies account-classification rules that suppress metrics which do not
apply to the analyzed account.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSanitizeCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
