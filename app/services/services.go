// Package services 业务逻辑层：卡牌目录、抽牌引擎、历史回放
package services

import (
	"errors"
	"fmt"

	"oraculo/app/repositories"
)

// 业务错误，控制器通过 errors.Is 映射为 HTTP 状态码
var (
	// ErrEmptyCatalog 卡牌目录为空，属于服务端前置条件失败
	ErrEmptyCatalog = errors.New("card catalog is empty")
	// ErrNotFound 查询的资源不存在
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput 请求参数不合法
	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFound 将仓库层的 ErrNotFound 转为业务 ErrNotFound，其他错误原样包装
func notFound(what string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}
