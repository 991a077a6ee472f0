// Package auth 读取外部身份提供方传入的用户标识
// 本服务不做认证，只信任网关写入的请求头
package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// ContextKey gin 上下文中保存用户标识的键
const ContextKey = "owner_id"

// MaxOwnerLength 用户标识最大长度，与数据库字段一致
const MaxOwnerLength = 64

// FromHeader 从请求头解析用户标识，缺失或不合法时返回 false
func FromHeader(c *gin.Context, header string) (string, bool) {
	owner := strings.TrimSpace(c.GetHeader(header))
	if owner == "" || utf8.RuneCountInString(owner) > MaxOwnerLength {
		return "", false
	}
	return owner, true
}

// CurrentOwner 当前请求的用户标识
func CurrentOwner(c *gin.Context) (string, bool) {
	owner := c.GetString(ContextKey)
	return owner, owner != ""
}

// CurrentOwnerPtr 当前用户标识，匿名请求返回 nil
func CurrentOwnerPtr(c *gin.Context) *string {
	if owner, ok := CurrentOwner(c); ok {
		return &owner
	}
	return nil
}
