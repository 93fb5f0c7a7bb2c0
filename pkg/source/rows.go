package source

import (
	"github.com/google/uuid"

	"github.com/kasuganosora/rowset/pkg/rowset"
)

// KeyedRows 把一批键值映射包装成 Keyed 形态的行
func KeyedRows(records []map[string]interface{}) []rowset.Row {
	rows := make([]rowset.Row, len(records))
	for i, record := range records {
		rows[i] = rowset.NewKeyedRow(record)
	}
	return rows
}

// Materialize 用一批键值映射构造结果集，声明总数取记录条数
func Materialize(records []map[string]interface{}) *rowset.ResultSet {
	return rowset.New(KeyedRows(records), len(records))
}

// TraceID 生成一次物化的跟踪标识，用于日志关联
func TraceID() string {
	return uuid.NewString()
}
