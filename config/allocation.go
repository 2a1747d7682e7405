package config

import "errors"

// AllocationConfig 代理数据记录的分配配置
//
// 上限为 0 表示不限。
type AllocationConfig struct {
	// MaxUnicastLocators 每个 locator 集合的单播地址上限
	MaxUnicastLocators int `json:"max_unicast_locators"`

	// MaxMulticastLocators 每个 locator 集合的组播地址上限
	MaxMulticastLocators int `json:"max_multicast_locators"`
}

// DefaultAllocationConfig 返回默认分配配置
func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{
		MaxUnicastLocators:   4,
		MaxMulticastLocators: 1,
	}
}

// Validate 验证分配配置
func (c AllocationConfig) Validate() error {
	if c.MaxUnicastLocators < 0 {
		return errors.New("allocation: max_unicast_locators must not be negative")
	}
	if c.MaxMulticastLocators < 0 {
		return errors.New("allocation: max_multicast_locators must not be negative")
	}
	return nil
}
