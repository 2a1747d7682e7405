package config

import "errors"

// TransportConfig 传输配置
//
// 只有启用的传输类型对应的远端 locator 会被接受，其余在解码时丢弃。
type TransportConfig struct {
	// EnableUDPv4 启用 UDPv4
	EnableUDPv4 bool `json:"enable_udpv4"`

	// EnableUDPv6 启用 UDPv6
	EnableUDPv6 bool `json:"enable_udpv6"`

	// EnableTCPv4 启用 TCPv4
	EnableTCPv4 bool `json:"enable_tcpv4"`

	// EnableTCPv6 启用 TCPv6
	EnableTCPv6 bool `json:"enable_tcpv6"`

	// EnableSHM 启用共享内存传输
	EnableSHM bool `json:"enable_shm"`

	// TransformCacheSize 远端 locator 转换结果缓存条目数
	TransformCacheSize int `json:"transform_cache_size"`
}

// DefaultTransportConfig 返回默认传输配置（仅 UDPv4）
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		EnableUDPv4:        true,
		TransformCacheSize: 256,
	}
}

// Validate 验证传输配置
func (c TransportConfig) Validate() error {
	if !c.EnableUDPv4 && !c.EnableUDPv6 && !c.EnableTCPv4 && !c.EnableTCPv6 && !c.EnableSHM {
		return errors.New("transport: at least one transport must be enabled")
	}
	if c.TransformCacheSize <= 0 {
		return errors.New("transport: transform_cache_size must be positive")
	}
	return nil
}
