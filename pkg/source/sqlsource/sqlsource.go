// Package sqlsource 把 database/sql 的查询结果物化为 rowset.ResultSet。
// 同一套物化逻辑适用于所有 database/sql 驱动，MySQL/PostgreSQL/SQLite
// 的驱动注册见同包的 mysql.go / postgres.go / sqlite.go。
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// DB 数据库连接包装
type DB struct {
	driverName string
	dsn        string
	db         *sql.DB
	logger     source.Logger
	connected  bool
}

// Open 创建连接包装，不立即建立连接
func Open(driverName, dsn string) *DB {
	return &DB{
		driverName: driverName,
		dsn:        dsn,
		logger:     source.NewNoOpLogger(),
	}
}

// SetLogger 设置日志
func (d *DB) SetLogger(logger source.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// Connect 建立连接并探活
func (d *DB) Connect(ctx context.Context) error {
	db, err := sql.Open(d.driverName, d.dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", d.driverName, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping %s: %w", d.driverName, err)
	}

	d.db = db
	d.connected = true
	return nil
}

// Close 关闭连接
func (d *DB) Close(ctx context.Context) error {
	if d.db != nil {
		if err := d.db.Close(); err != nil {
			return fmt.Errorf("failed to close %s connection: %w", d.driverName, err)
		}
	}
	d.connected = false
	return nil
}

// IsConnected 检查是否已连接
func (d *DB) IsConnected() bool {
	return d.connected
}

// DB 返回底层 *sql.DB
func (d *DB) DB() *sql.DB {
	return d.db
}

// Query 执行查询并把全部行物化为结果集
func (d *DB) Query(ctx context.Context, query string, args ...interface{}) (*rowset.ResultSet, error) {
	if !d.connected || d.db == nil {
		return nil, fmt.Errorf("%s source not connected", d.driverName)
	}

	traceID := source.TraceID()
	d.logger.Debug("[%s] running query on %s", traceID, d.driverName)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", d.driverName, err)
	}
	defer rows.Close()

	rs, err := Materialize(rows)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("[%s] materialized %d rows", traceID, rs.Count())
	return rs, nil
}

// Materialize 把 *sql.Rows 的全部行读入内存
// 行必须在此处一次性读完，返回的结果集之后不再触碰数据库
func Materialize(rows *sql.Rows) (*rowset.ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var records []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		scanArgs := make([]interface{}, len(columns))
		for i := range scanArgs {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			record[column] = normalizeValue(values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return source.Materialize(records), nil
}

// normalizeValue 驱动扫描出的 []byte 统一转成 string，其余原样返回
func normalizeValue(value interface{}) interface{} {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
