package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with recovery, request ids, open cors
// and the API routes.
func NewRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "X-Requested-With", "X-Request-ID"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	setupRoutes(router, h)

	return router
}

func setupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/healthz", h.HandleHealth)

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.POST("/analyze", h.HandleAnalyze)
		apiGroup.POST("/features", h.HandleFeatures)
		apiGroup.POST("/score", h.HandleScore)
		apiGroup.POST("/validate", h.HandleValidate)
	}
}
