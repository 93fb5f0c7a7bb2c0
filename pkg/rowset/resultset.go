// Package rowset 提供对已物化查询结果的统一只读访问。
// 行数据在构造时一次性传入，之后只能读取，不依赖任何具体数据库驱动。
package rowset

// ResultSet 已物化查询结果的只读访问器
// 行序列在构造后不再变化，仅 Free 可整体清空
// 内部不做任何同步，同一实例应由单一消费者顺序使用
type ResultSet struct {
	rows   []Row
	cursor int
	size   int
}

// New 创建 ResultSet
// size 为生产方声明的总行数，独立于 len(rows)，这里不做一致性校验；
// 保证两者一致是生产方的责任，不会从行序列反推 size
func New(rows []Row, size int) *ResultSet {
	return &ResultSet{
		rows: rows,
		size: size,
	}
}

// at 按下标取行，下标无行时返回哨兵
func (rs *ResultSet) at(index int) (Row, bool) {
	if index < 0 || index >= len(rs.rows) {
		return Row{}, false
	}
	return rs.rows[index], true
}

// peek 读取游标当前行，不移动游标
func (rs *ResultSet) peek() (Row, bool) {
	return rs.at(rs.cursor)
}

// readAdvance 读取游标当前行并前移一位（当前位置无行也照样前移）
func (rs *ResultSet) readAdvance() (Row, bool) {
	row, ok := rs.at(rs.cursor)
	rs.cursor++
	return row, ok
}

// Count 返回声明的总行数
func (rs *ResultSet) Count() int {
	return rs.size
}

// IsLoaded 判断结果集是否非空
func (rs *ResultSet) IsLoaded() bool {
	return rs.size > 0
}

// Current 返回游标当前行，不移动游标
// 游标未指向有效行时返回 ErrIndexOutOfRange
func (rs *ResultSet) Current() (Row, error) {
	row, ok := rs.peek()
	if !ok {
		return Row{}, NewErrIndexOutOfRange(rs.cursor, rs.size)
	}
	return row, nil
}

// Fetch 读取一行
// 不带参数时读取游标当前行并前移，支持"读一行走一步"式迭代；
// 带下标时按绝对下标读取，不影响游标
// 目标位置无行时返回哨兵行和 false，不报错
func (rs *ResultSet) Fetch(index ...int) (Row, bool) {
	if len(index) == 0 {
		return rs.readAdvance()
	}
	return rs.at(index[0])
}

// FetchAll 返回全部行的只读视图
// 不做复制，调用方不得修改返回的切片及其中的行
func (rs *ResultSet) FetchAll() []Row {
	return rs.rows
}

// Get 读取当前行的命名字段
// 游标无效、字段缺失或读取失败时返回默认值；
// Structured 形态下字段值为空也返回默认值，读取错误一律吞掉不上抛
func (rs *ResultSet) Get(name string, defaultValue ...interface{}) interface{} {
	var def interface{}
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	row, ok := rs.peek()
	if !ok {
		return def
	}

	switch row.kind {
	case KindKeyed:
		if value, ok := row.keyed[name]; ok {
			return value
		}
		return def
	case KindStructured:
		value, err := row.fieldByName(name)
		if err != nil || isNilValue(value) {
			return def
		}
		return value
	default:
		return def
	}
}

// Free 提前释放行数据：清空行、总数归零、游标复位
// 可重复调用
func (rs *ResultSet) Free() {
	rs.rows = nil
	rs.size = 0
	rs.cursor = 0
}

// Key 返回游标当前位置
func (rs *ResultSet) Key() int {
	return rs.cursor
}

// Position 返回游标当前位置，与 Key 返回相同的值
func (rs *ResultSet) Position() int {
	return rs.cursor
}

// Next 游标前移一位，不做越界检查
// 游标移出范围后 Valid 返回 false
func (rs *ResultSet) Next() {
	rs.cursor++
}

// Rewind 游标复位到 0
func (rs *ResultSet) Rewind() {
	rs.cursor = 0
}

// Valid 判断游标是否指向有效行
func (rs *ResultSet) Valid() bool {
	_, ok := rs.peek()
	return ok
}

// Seek 将游标移动到指定位置
// 目标位置无行时返回 ErrOutOfBounds，游标仍停在目标位置（不回滚）
func (rs *ResultSet) Seek(target int) error {
	rs.cursor = target
	if !rs.Valid() {
		return NewErrOutOfBounds(target, rs.size)
	}
	return nil
}

// OffsetExists 判断指定下标是否存在行
func (rs *ResultSet) OffsetExists(index int) bool {
	_, ok := rs.at(index)
	return ok
}

// OffsetGet 按下标取行，无行时返回哨兵，不报错
func (rs *ResultSet) OffsetGet(index int) (Row, bool) {
	return rs.at(index)
}

// OffsetSet 结果集只读，始终返回 ErrUnsupportedOperation，无副作用
func (rs *ResultSet) OffsetSet(index int, row Row) error {
	return NewErrUnsupportedOperation("OffsetSet")
}

// OffsetUnset 结果集只读，始终返回 ErrUnsupportedOperation，无副作用
func (rs *ResultSet) OffsetUnset(index int) error {
	return NewErrUnsupportedOperation("OffsetUnset")
}
