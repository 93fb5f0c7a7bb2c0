// Package csvsource 把 CSV 文件物化为 rowset.ResultSet。
// 支持自定义分隔符、无列头文件以及非 UTF-8 编码的转码读取。
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// 支持的选项：
//   delimiter string 分隔符，默认 ","
//   header    bool   第一行是否为列头，默认 true
//   charset   string 文件编码，默认 UTF-8，支持 gbk/gb18030/utf-16le/utf-16be

// Load 加载 CSV 文件并物化为结果集
func Load(path string, config *source.Config) (*rowset.ResultSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %q: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if charset := config.StringOption("charset", ""); charset != "" {
		enc, err := lookupEncoding(charset)
		if err != nil {
			return nil, err
		}
		reader = transform.NewReader(reader, enc.NewDecoder())
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	if delimiter := config.StringOption("delimiter", ""); delimiter != "" {
		cr.Comma = []rune(delimiter)[0]
	}

	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %q: %w", path, err)
	}
	if len(lines) == 0 {
		return rowset.New(nil, 0), nil
	}

	var header []string
	if config.BoolOption("header", true) {
		header = lines[0]
		lines = lines[1:]
	} else {
		// 无列头文件按位置生成列名
		for i := range lines[0] {
			header = append(header, fmt.Sprintf("column_%d", i+1))
		}
	}

	records := make([]map[string]interface{}, 0, len(lines))
	for _, line := range lines {
		record := make(map[string]interface{}, len(header))
		for i, column := range header {
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

// lookupEncoding 按名称找转码器
func lookupEncoding(charset string) (encoding.Encoding, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	case "gbk":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	default:
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
}
