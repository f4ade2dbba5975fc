package jobs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amychanwt/apply-boost/internal/shared/server/respond"
)

// Handler serves the recommended-jobs endpoint.
type Handler struct {
	// Delay simulates ranking latency before the catalog is returned.
	Delay time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(delay time.Duration) *Handler {
	return &Handler{Delay: delay}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/recommended", h.recommended)
}

func (h *Handler) recommended(c *gin.Context) {
	if h.Delay > 0 {
		timer := time.NewTimer(h.Delay)
		defer timer.Stop()
		select {
		case <-c.Request.Context().Done():
			c.Abort()
			return
		case <-timer.C:
		}
	}

	respond.JSON(c, http.StatusOK, Recommended())
}
