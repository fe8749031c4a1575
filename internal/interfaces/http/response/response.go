package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "fantera.backend/internal/domain/errors"
)

// envelope fields follow the public API contract: success responses carry
// {success:true, data}, errors carry {success:false, error:{code,message,type}}.

// Success sends a success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error sends an error envelope
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.System("INTERNAL_ERROR", "internal server error", err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"type":    appErr.Type,
		},
	})
}
