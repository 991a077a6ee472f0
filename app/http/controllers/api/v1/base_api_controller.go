// Package v1 处理业务逻辑, v1 版本的控制器
package v1

import (
	"errors"
	"strconv"

	"oraculo/app/services"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// BaseAPIController 基础控制器
type BaseAPIController struct {
}

// AbortWithError 将业务错误映射为 HTTP 响应
func (ctrl *BaseAPIController) AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Abort404(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		response.BadRequest(c, err, "请求参数错误")
	case errors.Is(err, services.ErrEmptyCatalog):
		response.Abort503(c, "卡牌目录为空，请先导入牌组")
	default:
		response.ServerError(c, err)
	}
}

// QueryInt 读取整数查询参数，缺失时返回默认值
func (ctrl *BaseAPIController) QueryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " 必须是整数")
	}
	return n, nil
}

// ParamUint 读取无符号整数路由参数
func (ctrl *BaseAPIController) ParamUint(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		response.Abort400(c, key+" 必须是正整数")
		return 0, false
	}
	return uint(n), true
}
