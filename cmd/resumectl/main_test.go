package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/shared/telemetry"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	exportFormat, exportIn, exportOut = "txt", "-", ""
	suggestType, suggestContext = "summary", "{}"

	prev := telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(prev)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportTxtToStdout(t *testing.T) {
	out, err := execute(t, `{"data":{"name":"Ann Lee","title":"Engineer","skills":[{"name":"Go"}]}}`, "export", "--format", "txt")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "Ann Lee\nEngineer\n\nSkills\nGo\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExportKeepsLogLinesOffStdout(t *testing.T) {
	exportFormat, exportIn, exportOut = "txt", "-", ""

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	origStdout := os.Stdout
	os.Stdout = w
	prev := telemetry.SetOutput(os.Stdout)
	t.Cleanup(func() {
		os.Stdout = origStdout
		telemetry.SetOutput(prev)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	captured := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(r)
		captured <- data
	}()

	var errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(`{"data":{"name":"Ann Lee","title":"Engineer","skills":[{"name":"Go"}]}}`))
	rootCmd.SetOut(nil)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"export", "--format", "txt"})
	runErr := rootCmd.ExecuteContext(context.Background())
	_ = w.Close()
	os.Stdout = origStdout
	stdout := <-captured

	if runErr != nil {
		t.Fatalf("export: %v", runErr)
	}
	if string(stdout) != "Ann Lee\nEngineer\n\nSkills\nGo\n" {
		t.Fatalf("stdout should hold only the document, got %q", stdout)
	}
	if !strings.Contains(errOut.String(), `"msg":"export.complete"`) {
		t.Fatalf("expected export log on stderr, got %q", errOut.String())
	}
}

func TestExportThenInspect(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "payload.json")
	if err := os.WriteFile(in, []byte(`{"data":{"name":"Ann Lee","summary":"Builds reliable systems."}}`), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	for _, format := range []string{"docx", "pdf"} {
		outPath := filepath.Join(dir, "resume."+format)
		if _, err := execute(t, "", "export", "--format", format, "--in", in, "--out", outPath); err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		out, err := execute(t, "", "inspect", outPath)
		if err != nil {
			t.Fatalf("inspect %s: %v", format, err)
		}
		if !strings.Contains(out, "Ann Lee") {
			t.Fatalf("inspect %s: expected name in output, got %q", format, out)
		}
	}
}

func TestExportRejectsMissingData(t *testing.T) {
	if _, err := execute(t, `{"template":"clean"}`, "export"); err == nil {
		t.Fatalf("expected error for missing data")
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	if _, err := execute(t, `{"data":{}}`, "export", "--format", "odt"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestSuggestBullets(t *testing.T) {
	out, err := execute(t, "", "suggest", "--type", "bullets", "--context", `{"role":"Lead","company":"Acme"}`)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.Contains(lines[0], "as Lead at Acme") {
		t.Fatalf("unexpected bullets %q", out)
	}
}

func TestSuggestUnsupportedType(t *testing.T) {
	if _, err := execute(t, "", "suggest", "--type", "haiku"); err == nil {
		t.Fatalf("expected unsupported type error")
	}
}
