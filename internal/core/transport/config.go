package transport

import (
	"github.com/cherho0/Fast-DDS/config"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// Config 网络工厂配置
type Config struct {
	// EnabledKinds 启用的传输类型
	EnabledKinds []types.LocatorKind

	// CacheSize 转换结果缓存条目数
	CacheSize int
}

// NewConfig 创建默认配置（仅 UDPv4）
func NewConfig() Config {
	return ConfigFromUnified(nil)
}

// ConfigFromUnified 从统一配置创建网络工厂配置
func ConfigFromUnified(cfg *config.Config) Config {
	tc := config.DefaultTransportConfig()
	if cfg != nil {
		tc = cfg.Transport
	}

	var kinds []types.LocatorKind
	if tc.EnableUDPv4 {
		kinds = append(kinds, types.LocatorKindUDPv4)
	}
	if tc.EnableUDPv6 {
		kinds = append(kinds, types.LocatorKindUDPv6)
	}
	if tc.EnableTCPv4 {
		kinds = append(kinds, types.LocatorKindTCPv4)
	}
	if tc.EnableTCPv6 {
		kinds = append(kinds, types.LocatorKindTCPv6)
	}
	if tc.EnableSHM {
		kinds = append(kinds, types.LocatorKindSHM)
	}

	return Config{
		EnabledKinds: kinds,
		CacheSize:    tc.TransformCacheSize,
	}
}
