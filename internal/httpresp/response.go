package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Done acknowledges a write.
func Done(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Success: true, Message: message})
}
