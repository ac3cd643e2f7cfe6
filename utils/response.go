package utils

import (
	"github.com/gin-gonic/gin"
)

// Success writes {"success": true, ...fields}.
func Success(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes {"success": false, "error": message}. Datastore errors never
// reach this message; callers log them instead.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
