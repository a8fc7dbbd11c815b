package health

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const readyMessage = "Resume Builder Backend ready"

// Service encapsulates the readiness message.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the readiness payload.
func (s *Service) Status() map[string]string {
	return map[string]string{"message": readyMessage}
}

// RegisterRoutes serves the readiness payload at the root path.
func (s *Service) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
