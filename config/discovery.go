package config

import (
	"errors"
	"time"
)

// DiscoveryConfig 参与者发现配置
type DiscoveryConfig struct {
	// LeaseDuration 本地参与者公告的租约时长
	// 对端超过此时间未收到存活信号即认为本参与者失效
	LeaseDuration Duration `json:"lease_duration"`

	// AnnouncementPeriod 本地参与者重复公告的周期，必须小于 LeaseDuration
	AnnouncementPeriod Duration `json:"announcement_period"`

	// ExpectsInlineQos 本地参与者是否期望内联 QoS
	ExpectsInlineQos bool `json:"expects_inline_qos,omitempty"`

	// BuiltinEndpoints 本地声明的内置端点位掩码
	BuiltinEndpoints uint32 `json:"builtin_endpoints"`

	// InitialProxies 对象池启动时预分配的代理记录数
	InitialProxies int `json:"initial_proxies"`

	// MaxFreeProxies 对象池保留的空闲记录上限，0 表示不限
	MaxFreeProxies int `json:"max_free_proxies"`
}

// DefaultDiscoveryConfig 返回默认发现配置
func DefaultDiscoveryConfig() DiscoveryConfig {
	return DiscoveryConfig{
		LeaseDuration:      Duration(20 * time.Second),
		AnnouncementPeriod: Duration(3 * time.Second),
		BuiltinEndpoints:   0x0c3f,
		InitialProxies:     4,
		MaxFreeProxies:     64,
	}
}

// Validate 验证发现配置
func (c DiscoveryConfig) Validate() error {
	if c.LeaseDuration <= 0 {
		return errors.New("discovery: lease_duration must be positive")
	}
	if c.AnnouncementPeriod <= 0 || c.AnnouncementPeriod >= c.LeaseDuration {
		return errors.New("discovery: announcement_period must be positive and shorter than lease_duration")
	}
	if c.InitialProxies < 0 {
		return errors.New("discovery: initial_proxies must not be negative")
	}
	if c.MaxFreeProxies < 0 {
		return errors.New("discovery: max_free_proxies must not be negative")
	}
	if c.MaxFreeProxies > 0 && c.InitialProxies > c.MaxFreeProxies {
		return errors.New("discovery: initial_proxies exceeds max_free_proxies")
	}
	return nil
}
