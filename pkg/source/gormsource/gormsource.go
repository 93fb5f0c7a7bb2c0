// Package gormsource 在已有的 *gorm.DB 连接上执行原生查询，
// 并把返回的行整体物化为 rowset.ResultSet。
package gormsource

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source/sqlsource"
)

// Query 执行原生 SQL 并把结果整体物化
// 物化完成后结果集与 gorm 连接再无关联
func Query(db *gorm.DB, query string, args ...interface{}) (*rowset.ResultSet, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db is nil")
	}

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query via gorm: %w", err)
	}
	defer rows.Close()

	return sqlsource.Materialize(rows)
}
