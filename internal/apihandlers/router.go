package apihandlers

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine serving the categorizer API.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestID(), AccessLog(), Recovery())

	router.GET("/health", h.HealthHandler)
	router.POST("/categorize", h.CategorizeHandler)

	router.NoRoute(func(c *gin.Context) {
		NotFound(c, "route not found: "+c.Request.URL.Path)
	})
	router.NoMethod(func(c *gin.Context) {
		MethodNotAllowed(c, c.Request.Method+" not allowed on "+c.Request.URL.Path)
	})
	return router
}
