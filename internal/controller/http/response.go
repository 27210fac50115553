package http

import (
	"gamehub/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns. Status mirrors the
// transport status code.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Status: status, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: status, Message: message})
}

func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Status, Response{Status: appErr.Status, Message: appErr.Message})
}
