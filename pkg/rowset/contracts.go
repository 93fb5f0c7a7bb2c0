package rowset

// 四个相互独立的能力契约，*ResultSet 同时满足全部四个。
// 消费方可按需只依赖其中任意子集。

// Sized 行数契约
type Sized interface {
	// Count 返回声明的总行数
	Count() int

	// IsLoaded 判断结果集是否非空
	IsLoaded() bool
}

// Iterator 游标迭代契约
type Iterator interface {
	// Key 返回游标当前位置
	Key() int

	// Position 返回游标当前位置，与 Key 等价
	Position() int

	// Next 游标前移一位
	Next()

	// Rewind 游标复位到 0
	Rewind()

	// Valid 判断游标是否指向有效行
	Valid() bool

	// Current 返回游标当前行
	Current() (Row, error)
}

// Seeker 随机定位契约
type Seeker interface {
	// Seek 将游标移动到指定位置
	Seek(target int) error
}

// Indexed 只读下标访问契约
type Indexed interface {
	// OffsetExists 判断指定下标是否存在行
	OffsetExists(index int) bool

	// OffsetGet 按下标取行，无行时返回哨兵
	OffsetGet(index int) (Row, bool)

	// OffsetSet 始终失败，结果集只读
	OffsetSet(index int, row Row) error

	// OffsetUnset 始终失败，结果集只读
	OffsetUnset(index int) error
}

// 编译期断言：*ResultSet 实现全部契约
var (
	_ Sized    = (*ResultSet)(nil)
	_ Iterator = (*ResultSet)(nil)
	_ Seeker   = (*ResultSet)(nil)
	_ Indexed  = (*ResultSet)(nil)
)
