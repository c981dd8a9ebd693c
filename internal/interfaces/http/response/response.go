package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "fundilink.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Data wraps data in the {success, data} envelope used by list endpoints
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error sends an error response. Errors that are not an *AppError render as 500 without detail.
func Error(c *gin.Context, err error) {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"code":    code,
		"message": message,
		"error":   message,
	})
}

// Abort writes an error response and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
