// Package jsonsource 把 JSON 文件物化为 rowset.ResultSet。
// 文件内容为对象数组，或经 array_root 选项指定包在某个键下的对象数组。
package jsonsource

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// 支持的选项：
//   array_root string 对象数组所在的顶层键，缺省时文件本身就是数组

// Load 加载 JSON 文件并物化为结果集
func Load(path string, config *source.Config) (*rowset.ResultSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSON file %q: %w", path, err)
	}
	defer file.Close()

	return Decode(file, config)
}

// Decode 从任意 reader 读取并物化
func Decode(reader io.Reader, config *source.Config) (*rowset.ResultSet, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON data: %w", err)
	}

	arrayRoot := config.StringOption("array_root", "")
	if arrayRoot != "" {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse JSON object: %w", err)
		}
		nested, ok := wrapper[arrayRoot]
		if !ok {
			return nil, fmt.Errorf("array root %q not found", arrayRoot)
		}
		data = nested
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %w", err)
	}

	return source.Materialize(records), nil
}
