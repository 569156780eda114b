package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithWarnings is used by operations whose best-effort side
// effects may fail without failing the operation itself. Warnings are
// omitted when empty.
func SuccessWithWarnings(c *gin.Context, statusCode int, data interface{}, warnings []string) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	c.JSON(statusCode, body)
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
