package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound 按键读取/更新/删除时目标不存在
var ErrNotFound = errors.New("entity not found")

// ValidationError 客户端可修正的校验失败，携带首个违反的规则
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError 插入时主键已存在
type ConflictError struct {
	Kind string
	Key  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with id %s already exists", e.Kind, e.Key)
}

// BusinessRuleError 业务规则冲突（如移除仍有活跃订单的品种、修改 legalEntity）
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

func NewBusinessRuleError(format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Reason: fmt.Sprintf(format, args...)}
}
