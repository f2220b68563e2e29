package middleware

import "github.com/gin-gonic/gin"

// Logger is gin's request logger with health-check noise suppressed.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
	})
}
