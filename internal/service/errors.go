package service

import (
	"errors"
	"fmt"
	"strings"
)

// 写路径的四类业务错误，handler 层据此映射状态码
var (
	// ErrNotFound ID 对应的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrNotOwner 调用者不是记录的所有者
	ErrNotOwner = errors.New("无权操作他人的记录")
	// ErrDuplicate 违反唯一性约束
	ErrDuplicate = errors.New("记录已存在")
)

// ValidationError 必填字段缺失或非法
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("缺少必填字段: %s", strings.Join(e.Fields, ", "))
}

// IsValidation 判断是否校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
