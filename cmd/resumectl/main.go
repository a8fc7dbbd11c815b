// Package main provides resumectl, a command-line front end for the résumé
// exporters and suggestion templates.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resume-builder/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Resume Builder command-line tools",
	Long:          "resumectl exports résumé payloads to TXT, DOCX or PDF, generates writing suggestions, and inspects exported documents.",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Stdout carries exported documents, so log lines go to stderr.
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		telemetry.SetOutput(cmd.ErrOrStderr())
	},
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
