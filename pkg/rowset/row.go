package rowset

import (
	"fmt"
	"reflect"
)

// RowKind 行数据的形态标签
type RowKind uint8

const (
	// KindNone 空行（"无值"哨兵）
	KindNone RowKind = iota
	// KindKeyed 键值映射形态，按键名查找
	KindKeyed
	// KindStructured 结构体形态，按字段名访问
	KindStructured
)

// Row 一行查询结果
// 两种形态之一：Keyed（映射查键）或 Structured（结构体读字段）
// 零值 Row 即"无值"哨兵，Exists() 返回 false
type Row struct {
	kind   RowKind
	keyed  map[string]interface{}
	object interface{}
}

// NewKeyedRow 创建键值映射形态的行
func NewKeyedRow(values map[string]interface{}) Row {
	return Row{kind: KindKeyed, keyed: values}
}

// NewStructuredRow 创建结构体形态的行
// object 应为 struct 或指向 struct 的指针
func NewStructuredRow(object interface{}) Row {
	return Row{kind: KindStructured, object: object}
}

// Kind 返回行形态标签
func (r Row) Kind() RowKind {
	return r.kind
}

// Exists 判断是否为有效行（非哨兵）
func (r Row) Exists() bool {
	return r.kind != KindNone
}

// Map 返回 Keyed 形态的底层映射，非 Keyed 形态返回 nil
// 调用方不得修改返回的映射
func (r Row) Map() map[string]interface{} {
	if r.kind != KindKeyed {
		return nil
	}
	return r.keyed
}

// Object 返回 Structured 形态的底层对象，非 Structured 形态返回 nil
func (r Row) Object() interface{} {
	if r.kind != KindStructured {
		return nil
	}
	return r.object
}

// Field 按名称读取字段或键值
// Keyed 形态查键，Structured 形态经反射读字段，失败时 ok 为 false
func (r Row) Field(name string) (interface{}, bool) {
	switch r.kind {
	case KindKeyed:
		value, ok := r.keyed[name]
		return value, ok
	case KindStructured:
		value, err := r.fieldByName(name)
		if err != nil {
			return nil, false
		}
		return value, true
	default:
		return nil, false
	}
}

// fieldByName 读取结构体字段，读取失败以 error 返回而非 panic
func (r Row) fieldByName(name string) (interface{}, error) {
	rv := reflect.ValueOf(r.object)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("row object is a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row object is %s, not a struct", rv.Kind())
	}

	fv := rv.FieldByName(name)
	if !fv.IsValid() {
		return nil, fmt.Errorf("field %s not found", name)
	}
	if !fv.CanInterface() {
		return nil, fmt.Errorf("field %s is not exported", name)
	}
	return fv.Interface(), nil
}

// isNilValue 判断字段值是否为空值（含带类型的 nil 指针/映射/切片）
func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
