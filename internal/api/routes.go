package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.Use(CORS())

	// --- Builder UI ---
	router.GET("/", h.Index)
	router.GET("/index.html", h.Index)
	router.POST("/generate", h.Generate)
	router.POST("/download", h.Download)

	// --- Project Lifecycle ---
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/build-website", h.BuildWebsite)
		apiGroup.GET("/download/:projectId", h.GetProject)
		apiGroup.GET("/projects", h.ListProjects)
		apiGroup.GET("/projects/:projectId/instructions", h.ProjectInstructions)
		apiGroup.GET("/health", h.Health("healthy"))
	}

	// --- Simple Health Check ---
	router.GET("/health", h.Health("ok"))

	router.NoRoute(h.NotFound)
}

// NewRouter builds the gin engine with logging, recovery and all routes.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	RegisterRoutes(router, h)
	return router
}

// CORS allows any origin and answers preflight requests directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
