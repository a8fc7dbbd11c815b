package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/resume/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate a summary or experience bullets from a small context",
	RunE:  runSuggest,
}

var (
	suggestType    string
	suggestContext string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestType, "type", "t", suggest.KindSummary, "Suggestion type: summary or bullets")
	suggestCmd.Flags().StringVarP(&suggestContext, "context", "c", "{}", "Context object as JSON, e.g. '{\"title\":\"engineer\"}'")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	var ctx map[string]any
	if err := json.Unmarshal([]byte(suggestContext), &ctx); err != nil {
		return fmt.Errorf("parse context: %w", err)
	}
	if ctx == nil {
		ctx = map[string]any{}
	}

	out, err := suggest.Suggest(ctx, suggestType)
	if err != nil {
		return err
	}

	if out.Text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out.Text)
		return nil
	}
	for _, b := range out.Bullets {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", b)
	}
	return nil
}
