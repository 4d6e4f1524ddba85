package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format is flat: successful reads return their payload directly,
// empty results answer {"message": …} and failures answer {"error": …}.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func MethodNotAllowed(c *gin.Context, msg string) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
