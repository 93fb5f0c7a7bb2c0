package sqlsource

import (
	_ "modernc.org/sqlite"
)

// OpenSQLite 创建 SQLite 连接包装
// path 为数据库文件路径，:memory: 表示纯内存库
func OpenSQLite(path string) *DB {
	return Open("sqlite", path)
}
