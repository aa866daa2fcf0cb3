package alice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the webhook handler into an HTTP router. The skill is a
// single POST endpoint plus a health probe.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/alice", func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("malformed webhook request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
			return
		}
		c.JSON(http.StatusOK, h.Handle(c.Request.Context(), req))
	})

	return router
}
