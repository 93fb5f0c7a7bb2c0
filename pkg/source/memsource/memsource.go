// Package memsource 直接用内存中的数据构造 rowset.ResultSet。
// 适合测试和已经由上层代码组装好的数据。
package memsource

import (
	"fmt"
	"reflect"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// FromMaps 用键值映射切片构造结果集，声明总数取切片长度
func FromMaps(records []map[string]interface{}) *rowset.ResultSet {
	return source.Materialize(records)
}

// FromMapsWithTotal 用键值映射切片构造结果集并显式声明总数
// total 可以与 len(records) 不同（比如库里总数与实际缓冲行数不一致的场景），
// 这里不做一致性校验，保证可寻址范围与 total 相符是调用方的责任
func FromMapsWithTotal(records []map[string]interface{}, total int) *rowset.ResultSet {
	return rowset.New(source.KeyedRows(records), total)
}

// FromStructs 用结构体切片构造 Structured 形态的结果集
// slice 必须是切片或数组，元素为 struct 或指向 struct 的指针
func FromStructs(slice interface{}) (*rowset.ResultSet, error) {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a slice or array, got %T", slice)
	}

	rows := make([]rowset.Row, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		rows[i] = rowset.NewStructuredRow(rv.Index(i).Interface())
	}
	return rowset.New(rows, len(rows)), nil
}
