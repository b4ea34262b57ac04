package handler

import (
	"net/http"

	"content_manager/internal/middleware"
	"content_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route registered
func NewRouter(authService service.AuthService, contentService service.ContentService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), cors())

	sessionMW := middleware.SessionMiddleware(authService)

	NewAuthHandler(authService).RegisterAuthRoutes(router, sessionMW)
	NewContentHandler(contentService).RegisterContentRoutes(router, sessionMW)

	return router
}

// Simple CORS middleware (allow all). The token travels in a custom header,
// so it has to be listed explicitly.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Access-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
