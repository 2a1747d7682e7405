// Package config 提供统一的配置管理
//
// 主 Config 结构体嵌入所有子配置，每个子配置在独立文件中定义，
// 支持从 JSON 加载和保存：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Allocation.MaxUnicastLocators = 4
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Config 发现子系统的完整配置
//
//   - Allocation: 代理数据记录的容量上限
//   - Discovery: 本地公告参数与代理对象池
//   - Transport: 启用的传输类型与地址转换缓存
type Config struct {
	// Allocation 资源分配配置
	Allocation AllocationConfig `json:"allocation"`

	// Discovery 参与者发现配置
	Discovery DiscoveryConfig `json:"discovery"`

	// Transport 传输配置
	Transport TransportConfig `json:"transport"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Allocation: DefaultAllocationConfig(),
		Discovery:  DefaultDiscoveryConfig(),
		Transport:  DefaultTransportConfig(),
	}
}

// Validate 验证配置的有效性，一次报告所有子配置的问题
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return multierr.Combine(
		c.Allocation.Validate(),
		c.Discovery.Validate(),
		c.Transport.Validate(),
	)
}

// FromJSON 从 JSON 加载配置，未出现的字段保留默认值
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 序列化为带缩进的 JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
