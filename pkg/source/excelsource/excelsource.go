// Package excelsource 把 Excel 工作表物化为 rowset.ResultSet。
// 第一行作为列头，其余行作为数据行，全部读入内存后文件即可关闭。
package excelsource

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// 支持的选项：
//   sheet_name string 工作表名，缺省取第一个工作表

// Load 加载 Excel 文件并物化为结果集
func Load(path string, config *source.Config) (*rowset.ResultSet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file %q: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in excel file %q", path)
	}

	sheetName := config.StringOption("sheet_name", "")
	if sheetName == "" {
		sheetName = sheets[0]
	} else {
		found := false
		for _, sheet := range sheets {
			if sheet == sheetName {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("sheet not found: %s", sheetName)
		}
	}

	cells, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read excel rows: %w", err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet is empty: %s", sheetName)
	}

	// 第一行是列头
	header := cells[0]
	records := make([]map[string]interface{}, 0, len(cells)-1)
	for _, line := range cells[1:] {
		record := make(map[string]interface{}, len(header))
		for i, column := range header {
			// 行尾的空单元格会被裁掉，补成空字符串
			if i < len(line) {
				record[column] = line[i]
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	return source.Materialize(records), nil
}
