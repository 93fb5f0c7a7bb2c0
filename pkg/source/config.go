// Package source 提供把外部数据物化为 rowset.ResultSet 的公共基础设施。
// 各具体数据来源（database/sql、Excel、CSV、JSON、Badger、内存）在子包中实现。
package source

// Config 数据来源配置
// 来源特有的选项统一放在 Options 映射里，由各适配器自行读取
type Config struct {
	// Name 来源名称，用于日志
	Name string `json:"name"`

	// Options 来源特有选项
	Options map[string]interface{} `json:"options,omitempty"`
}

// StringOption 读取字符串选项，缺失或类型不符时返回默认值
func (c *Config) StringOption(key, defaultValue string) string {
	if c == nil || c.Options == nil {
		return defaultValue
	}
	if value, ok := c.Options[key]; ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return defaultValue
}

// BoolOption 读取布尔选项，缺失或类型不符时返回默认值
func (c *Config) BoolOption(key string, defaultValue bool) bool {
	if c == nil || c.Options == nil {
		return defaultValue
	}
	if value, ok := c.Options[key]; ok {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return defaultValue
}

// IntOption 读取整数选项，缺失或类型不符时返回默认值
func (c *Config) IntOption(key string, defaultValue int) int {
	if c == nil || c.Options == nil {
		return defaultValue
	}
	switch value := c.Options[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	default:
		return defaultValue
	}
}
