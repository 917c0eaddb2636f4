package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all schedule routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/schedule", h.GenerateSchedule)
		apiGroup.GET("/runs", h.ListRuns)
		apiGroup.GET("/runs/:id/cells", h.GetRunCells)
	}

	return r
}

// Serve runs the HTTP server on the given port.
func Serve(logger *zap.Logger, h *Handler, port string) error {
	gin.SetMode(gin.ReleaseMode)

	router := NewRouter(h)
	addr := fmt.Sprintf(":%s", port)
	logger.Info("Starting schedule API", zap.String("addr", addr))
	return router.Run(addr)
}
