package sqlsource

import (
	_ "github.com/go-sql-driver/mysql"
)

// OpenMySQL 创建 MySQL 连接包装
// DSN 形如 user:pass@tcp(host:3306)/dbname
func OpenMySQL(dsn string) *DB {
	return Open("mysql", dsn)
}
