package httpx

import (
	"github.com/gin-gonic/gin"
)

// Envelope 是所有接口统一的响应结构。
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Message: message, Data: data})
}

// AbortWithMessage 终止后续处理并写出错误信封。
func AbortWithMessage(c *gin.Context, status int, message string, data any) {
	c.AbortWithStatusJSON(status, Envelope{Message: message, Data: data})
}
