package exports

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/exportevents"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
	"resume-builder/resume/service"
)

// Exporter renders a payload into a document.
type Exporter interface {
	Export(ctx context.Context, format string, payload model.ExportPayload) (service.Document, error)
}

// EventLister lists recorded exports.
type EventLister interface {
	Recent(ctx context.Context, limit int) ([]exportevents.Event, error)
}

// Handler wires the export endpoints.
type Handler struct {
	Exporter Exporter
	Events   EventLister
}

// NewHandler constructs a Handler. events may be nil.
func NewHandler(exporter Exporter, events EventLister) *Handler {
	return &Handler{Exporter: exporter, Events: events}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/export/:format", h.export)
	if h.Events != nil {
		rg.GET("/exports/recent", h.recent)
	}
}

func (h *Handler) export(c *gin.Context) {
	format := c.Param("format")
	if !service.SupportedFormat(format) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not Found")
		return
	}
	c.Set("exportFormat", format)

	var payload model.ExportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "Invalid export payload: "+err.Error())
		return
	}

	doc, err := h.Exporter.Export(c.Request.Context(), format, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFormat):
			respond.Error(c, http.StatusNotFound, "not_found", "Not Found")
		default:
			respond.Error(c, http.StatusInternalServerError, "render_failed", "Failed to render document")
		}
		return
	}

	respond.Attachment(c, doc.ContentType, doc.FileName, doc.Bytes)
}

func (h *Handler) recent(c *gin.Context) {
	limit := exportevents.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.Events.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to list exports")
		return
	}
	respond.OK(c, gin.H{"items": events})
}
