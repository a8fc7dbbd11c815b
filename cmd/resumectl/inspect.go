package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-builder/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the text of an exported PDF, DOCX or TXT document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, err := extract.ExtractTextFromBytes(cmd.Context(), data, "", filepath.Base(path))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "type: %s\n", res.MimeType)
	if res.PageCount > 0 {
		fmt.Fprintf(out, "pages: %d\n", res.PageCount)
	}
	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, res.Text)
	return nil
}
