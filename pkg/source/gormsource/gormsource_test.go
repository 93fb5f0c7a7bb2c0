package gormsource

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/callbacks"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
	_ "modernc.org/sqlite"
)

// testDialector 测试用的最小 gorm 驱动，直接复用 database/sql 连接
type testDialector struct {
	conn *sql.DB
}

func (d testDialector) Name() string {
	return "rowset-test"
}

func (d testDialector) Initialize(db *gorm.DB) error {
	db.ConnPool = d.conn
	callbacks.RegisterDefaultCallbacks(db, &callbacks.Config{})
	return nil
}

func (d testDialector) Migrator(db *gorm.DB) gorm.Migrator {
	return nil
}

func (d testDialector) DataTypeOf(field *schema.Field) string {
	return "TEXT"
}

func (d testDialector) DefaultValueOf(field *schema.Field) clause.Expression {
	return clause.Expr{SQL: "NULL"}
}

func (d testDialector) BindVarTo(writer clause.Writer, stmt *gorm.Statement, v interface{}) {
	writer.WriteByte('?')
}

func (d testDialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteString(str)
}

func (d testDialector) Explain(sql string, vars ...interface{}) string {
	return sql
}

// openTestGorm 准备带测试数据的 gorm 连接
func openTestGorm(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "gorm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO users (id, name) VALUES (1, 'Alice'), (2, 'Bob')`)
	require.NoError(t, err)

	db, err := gorm.Open(testDialector{conn: conn}, &gorm.Config{})
	require.NoError(t, err)
	return db
}

// TestQuery 测试经 gorm 的原生查询物化
func TestQuery(t *testing.T) {
	db := openTestGorm(t)

	rs, err := Query(db, `SELECT id, name FROM users ORDER BY id`)
	require.NoError(t, err)

	assert.Equal(t, 2, rs.Count())
	assert.Equal(t, "Alice", rs.Get("name"))
	rs.Next()
	assert.Equal(t, "Bob", rs.Get("name"))
}

// TestQueryWithArgs 测试带参数查询
func TestQueryWithArgs(t *testing.T) {
	db := openTestGorm(t)

	rs, err := Query(db, `SELECT name FROM users WHERE id = ?`, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Count())
	assert.Equal(t, "Bob", rs.Get("name"))
}

// TestQueryNilDB 测试空连接报错
func TestQueryNilDB(t *testing.T) {
	_, err := Query(nil, `SELECT 1`)
	assert.Error(t, err)
}

// TestQueryBadSQL 测试查询失败
func TestQueryBadSQL(t *testing.T) {
	db := openTestGorm(t)

	_, err := Query(db, `SELECT * FROM missing_table`)
	assert.Error(t, err)
}
