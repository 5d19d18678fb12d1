package domain

import (
	"errors"
	"fmt"
)

// 领域哨兵错误；transport 层统一映射为 HTTP 状态
var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError 输入不合法，调用方可整改后重试
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid printf 风格构造校验错误
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError 状态机拒绝的流转；消息必须同时带出当前态与目标态
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}
