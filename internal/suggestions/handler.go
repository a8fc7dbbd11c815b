package suggestions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
	"resume-builder/resume/suggest"
)

// Handler serves template-based writing suggestions.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the suggestion route to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/ai/suggest", h.suggest)
}

func (h *Handler) suggest(c *gin.Context) {
	var payload model.SuggestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "Invalid suggestion payload: "+err.Error())
		return
	}
	c.Set("suggestionType", payload.Type)

	out, err := suggest.Suggest(payload.Context, payload.Type)
	if err != nil {
		if errors.Is(err, suggest.ErrUnsupportedSuggestionType) {
			metrics.IncSuggestionRejected()
			respond.Error(c, http.StatusBadRequest, "unsupported_type", "Unsupported type")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error")
		return
	}

	metrics.IncSuggestion(payload.Type)
	respond.OK(c, out)
}
