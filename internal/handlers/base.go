package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// fail 校验/授权类错误：状态码 + 简短消息，无副作用
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// upstreamFail 依赖类错误：服务端记完整错误，调用方拿笼统消息加上游的 message 字段
func upstreamFail(c *gin.Context, context string, err error) {
	log.Printf("%s: %v", context, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "服务器内部错误",
		"message": err.Error(),
	})
}
