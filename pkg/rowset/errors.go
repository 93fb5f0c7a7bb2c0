package rowset

import (
	"errors"
	"fmt"
)

// 结果集访问错误

// ErrUnsupportedOperation 不支持的操作错误
// 经下标路径尝试修改结果集时返回
type ErrUnsupportedOperation struct {
	Operation string
}

func (e *ErrUnsupportedOperation) Error() string {
	return fmt.Sprintf("result set is read-only, cannot %s", e.Operation)
}

// NewErrUnsupportedOperation 创建不支持操作错误
func NewErrUnsupportedOperation(operation string) *ErrUnsupportedOperation {
	return &ErrUnsupportedOperation{Operation: operation}
}

// ErrOutOfBounds 定位越界错误
// Seek 的目标位置无行时返回，携带请求位置与总行数
type ErrOutOfBounds struct {
	Requested int
	Total     int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("requested position %d is out of bounds, total rows: %d", e.Requested, e.Total)
}

// NewErrOutOfBounds 创建定位越界错误
func NewErrOutOfBounds(requested, total int) *ErrOutOfBounds {
	return &ErrOutOfBounds{Requested: requested, Total: total}
}

// ErrIndexOutOfRange 游标越界错误
// Current 在游标未指向有效行时返回
type ErrIndexOutOfRange struct {
	Position int
	Total    int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("cursor position %d does not point to a row, total rows: %d", e.Position, e.Total)
}

// NewErrIndexOutOfRange 创建游标越界错误
func NewErrIndexOutOfRange(position, total int) *ErrIndexOutOfRange {
	return &ErrIndexOutOfRange{Position: position, Total: total}
}

// IsUnsupportedOperation 判断是否为不支持操作错误
func IsUnsupportedOperation(err error) bool {
	var target *ErrUnsupportedOperation
	return errors.As(err, &target)
}

// IsOutOfBounds 判断是否为定位越界错误
func IsOutOfBounds(err error) bool {
	var target *ErrOutOfBounds
	return errors.As(err, &target)
}

// IsIndexOutOfRange 判断是否为游标越界错误
func IsIndexOutOfRange(err error) bool {
	var target *ErrIndexOutOfRange
	return errors.As(err, &target)
}
