package middlewares

import (
	"oraculo/pkg/auth"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity 读取身份请求头并写入上下文，匿名请求照常放行
func Identity(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if owner, ok := auth.FromHeader(c, header); ok {
			c.Set(auth.ContextKey, owner)
		}
		c.Next()
	}
}

// AuthRequired 必须携带用户标识，需在 Identity 之后使用
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.CurrentOwner(c); !ok {
			response.Abort401(c)
			return
		}
		c.Next()
	}
}
