package handler

import (
	"context"
	"net/http"
	"time"

	"hospital-records-service/internal/web"
	"hospital-records-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the record store is reachable.
type Pinger func(ctx context.Context) error

type PageHandler struct {
	ping Pinger
}

func NewPageHandler(ping Pinger) *PageHandler {
	return &PageHandler{ping: ping}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewHome, nil)
}

// Health reports service and store status
func (h *PageHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "record store unreachable")
			return
		}
	}

	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"service": "hospital-records-service",
	})
}
