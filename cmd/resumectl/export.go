package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
	"resume-builder/resume/service"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a résumé payload to TXT, DOCX or PDF",
	Long:  "Reads an export payload ({\"data\": {...}, \"template\": ...}) from --in or stdin and writes the rendered document to --out or stdout.",
	RunE:  runExport,
}

var (
	exportFormat string
	exportIn     string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", service.FormatTXT, "Output format: txt, docx or pdf")
	exportCmd.Flags().StringVarP(&exportIn, "in", "i", "-", "Path to the export payload JSON (- for stdin)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults to stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	raw, err := readInput(cmd.InOrStdin(), exportIn)
	if err != nil {
		return err
	}

	var payload model.ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}
	if payload.Data == nil {
		return fmt.Errorf("payload is missing \"data\"")
	}

	doc, err := service.NewExporter(nil).Export(cmd.Context(), exportFormat, payload)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = cmd.OutOrStdout().Write(doc.Bytes)
		return err
	}
	if err := os.WriteFile(exportOut, doc.Bytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes, %s)\n", exportOut, len(doc.Bytes), doc.ContentType)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
