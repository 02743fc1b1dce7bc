// Package server exposes lesson generation over HTTP: a small JSON API
// for starting and inspecting generation tasks plus a websocket stream
// of live progress.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with all API routes.
func NewRouter(h *LessonHandler) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "courseforge"})
	})

	api := router.Group("/api")
	{
		api.POST("/lessons", h.Create)
		api.GET("/lessons", h.List)
		api.GET("/lessons/:id", h.Get)
	}

	router.GET("/ws/lessons/:id", h.Watch)

	return router
}
