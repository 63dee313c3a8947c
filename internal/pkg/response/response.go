// Package response renders the JSON envelope every endpoint speaks:
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": {"code": "...", "message": "...", "details": ...}}
//
// Error codes are stable machine-readable strings (SLOT_UNAVAILABLE,
// DAILY_CAPACITY_EXCEEDED, ...); messages are free text for humans.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Status reports a state change whose only payload is the new state, e.g.
// marking notifications read.
func Status(c *gin.Context, statusCode int, status string) {
	Success(c, statusCode, gin.H{"status": status})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails attaches a structured payload to the error, typically the
// field->message map from validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
