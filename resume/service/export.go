package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/exportevents"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/requestid"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const (
	FormatTXT  = "txt"
	FormatDOCX = "docx"
	FormatPDF  = "pdf"

	ContentTypeTXT  = "text/plain"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
)

// ErrUnsupportedFormat is returned for export formats other than txt, docx and pdf.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Document is a fully rendered export ready to be sent.
type Document struct {
	Format      string
	ContentType string
	FileName    string
	Bytes       []byte
}

// EventRecorder stores export metadata.
type EventRecorder interface {
	Record(ctx context.Context, ev exportevents.Event) error
}

type format struct {
	contentType string
	render      func(model.ResumeData) ([]byte, error)
}

var formats = map[string]format{
	FormatTXT: {
		contentType: ContentTypeTXT,
		render: func(r model.ResumeData) ([]byte, error) {
			return render.RenderText(r), nil
		},
	},
	FormatDOCX: {contentType: ContentTypeDOCX, render: render.RenderDOCX},
	FormatPDF:  {contentType: ContentTypePDF, render: render.RenderPDF},
}

// Exporter renders résumés into downloadable documents.
type Exporter struct {
	Events EventRecorder
}

// NewExporter constructs an Exporter. A nil recorder disables the event log.
func NewExporter(events EventRecorder) *Exporter {
	return &Exporter{Events: events}
}

// SupportedFormat reports whether name is an export format.
func SupportedFormat(name string) bool {
	_, ok := formats[name]
	return ok
}

// Export renders payload in the requested format. Cosmetic hints are recorded
// but never change the output.
func (e *Exporter) Export(ctx context.Context, name string, payload model.ExportPayload) (Document, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	f, ok := formats[name]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	payload = payload.WithDefaults()
	start := time.Now()
	data, err := f.render(payload.Resume())
	if err != nil {
		metrics.IncExportFailed(name)
		return Document{}, fmt.Errorf("render %s: %w", name, err)
	}
	elapsed := metrics.SinceMillis(start)
	metrics.ObserveExportDurationMs(elapsed)
	metrics.IncExport(name)

	requestID := requestid.From(ctx)
	telemetry.Info("export.complete", map[string]any{
		"request_id":  requestID,
		"format":      name,
		"size_bytes":  len(data),
		"duration_ms": elapsed,
		"template":    payload.Template,
	})

	if e != nil && e.Events != nil {
		ev := exportevents.Event{
			Format:    name,
			SizeBytes: int64(len(data)),
			Checksum:  util.Checksum(data),
			Template:  payload.Template,
			Color:     payload.Color,
			Font:      payload.Font,
			RequestID: requestID,
		}
		if err := e.Events.Record(ctx, ev); err != nil {
			telemetry.Warn("export.event_failed", map[string]any{
				"request_id": requestID,
				"format":     name,
				"error":      err.Error(),
			})
		}
	}

	return Document{
		Format:      name,
		ContentType: f.contentType,
		FileName:    "resume." + name,
		Bytes:       data,
	}, nil
}
