package rowset_test

import (
	"fmt"

	"github.com/kasuganosora/rowset/pkg/rowset"
)

// 游标迭代：Rewind/Valid/Next 走完整个结果集
func ExampleResultSet() {
	rs := rowset.New([]rowset.Row{
		rowset.NewKeyedRow(map[string]interface{}{"id": 1, "name": "a"}),
		rowset.NewKeyedRow(map[string]interface{}{"id": 2, "name": "b"}),
	}, 2)

	for rs.Rewind(); rs.Valid(); rs.Next() {
		fmt.Println(rs.Get("name"))
	}
	// Output:
	// a
	// b
}

// 无参 Fetch 的"读一行走一步"式迭代
func ExampleResultSet_Fetch() {
	rs := rowset.New([]rowset.Row{
		rowset.NewKeyedRow(map[string]interface{}{"city": "Tokyo"}),
		rowset.NewKeyedRow(map[string]interface{}{"city": "Osaka"}),
	}, 2)

	for {
		row, ok := rs.Fetch()
		if !ok {
			break
		}
		value, _ := row.Field("city")
		fmt.Println(value)
	}
	// Output:
	// Tokyo
	// Osaka
}

// 随机定位与越界报错
func ExampleResultSet_Seek() {
	rs := rowset.New([]rowset.Row{
		rowset.NewKeyedRow(map[string]interface{}{"id": 1}),
		rowset.NewKeyedRow(map[string]interface{}{"id": 2}),
	}, 2)

	if err := rs.Seek(1); err == nil {
		fmt.Println("position:", rs.Key())
	}
	if err := rs.Seek(5); err != nil {
		fmt.Println(err)
	}
	// Output:
	// position: 1
	// requested position 5 is out of bounds, total rows: 2
}
