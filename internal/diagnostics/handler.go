package diagnostics

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler exposes the diagnostic report.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the diagnostic route to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/test", h.status)
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.Svc.Status(c.Request.Context()))
}
