package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bodies are written in their bare shape ({"employees": [...]}, {"employee": {...}})
// rather than wrapped in an envelope; clients of the seed/employee API
// depend on it.

func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Message writes {"message": ...}. Used for 2xx notices and 4xx misses.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Empty writes {}, the "nothing happened" marker of update and delete.
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Error writes a failure body. 5xx carry the raw error text under "error";
// 4xx carry it under "message".
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	body := gin.H{"code": errorCode}
	if status >= http.StatusInternalServerError {
		body["error"] = message
	} else {
		body["message"] = message
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
