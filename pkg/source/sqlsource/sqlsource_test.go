package sqlsource

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/rowset/pkg/source"
)

// openTestDB 用临时 SQLite 库准备测试数据
func openTestDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db := OpenSQLite(path)
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	ctx := context.Background()
	_, err := db.DB().ExecContext(ctx, `CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT)`)
	require.NoError(t, err)
	_, err = db.DB().ExecContext(ctx, `INSERT INTO users (id, name, email) VALUES
		(1, 'Alice', 'alice@example.com'),
		(2, 'Bob', 'bob@example.com'),
		(3, 'Carol', NULL)`)
	require.NoError(t, err)

	return db
}

// TestQueryMaterialize 测试查询结果的整体物化
func TestQueryMaterialize(t *testing.T) {
	db := openTestDB(t)

	rs, err := db.Query(context.Background(), `SELECT id, name, email FROM users ORDER BY id`)
	require.NoError(t, err)

	assert.Equal(t, 3, rs.Count())
	assert.True(t, rs.IsLoaded())

	// 物化后纯内存迭代
	assert.Equal(t, "Alice", rs.Get("name"))
	rs.Next()
	assert.Equal(t, "Bob", rs.Get("name"))

	// NULL 列的键仍然存在，取到的是 nil 而不是默认值
	require.NoError(t, rs.Seek(2))
	assert.Nil(t, rs.Get("email", "none"))
	row2, _ := rs.Current()
	_, present := row2.Field("email")
	assert.True(t, present)

	// 文本列扫描结果统一为 string
	row, ok := rs.OffsetGet(0)
	require.True(t, ok)
	name, _ := row.Field("name")
	assert.IsType(t, "", name)
}

// TestQueryWithArgs 测试带参数查询
func TestQueryWithArgs(t *testing.T) {
	db := openTestDB(t)

	rs, err := db.Query(context.Background(), `SELECT name FROM users WHERE id > ?`, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Count())
}

// TestQueryEmptyResult 测试空结果
func TestQueryEmptyResult(t *testing.T) {
	db := openTestDB(t)

	rs, err := db.Query(context.Background(), `SELECT * FROM users WHERE id > 100`)
	require.NoError(t, err)

	assert.Equal(t, 0, rs.Count())
	assert.False(t, rs.IsLoaded())
	assert.False(t, rs.Valid())
}

// TestQueryNotConnected 测试未连接时报错
func TestQueryNotConnected(t *testing.T) {
	db := OpenSQLite(":memory:")

	_, err := db.Query(context.Background(), `SELECT 1`)
	assert.Error(t, err)
	assert.False(t, db.IsConnected())
}

// TestConnectLifecycle 测试连接生命周期
func TestConnectLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifecycle.db")
	db := OpenSQLite(path)

	assert.False(t, db.IsConnected())
	require.NoError(t, db.Connect(context.Background()))
	assert.True(t, db.IsConnected())
	require.NoError(t, db.Close(context.Background()))
	assert.False(t, db.IsConnected())
}

// TestQueryLogging 测试物化过程的调试日志
func TestQueryLogging(t *testing.T) {
	db := openTestDB(t)

	var buf bytes.Buffer
	db.SetLogger(source.NewDefaultLoggerWithOutput(source.LogDebug, &buf))

	_, err := db.Query(context.Background(), `SELECT id FROM users`)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "materialized 3 rows")
}
