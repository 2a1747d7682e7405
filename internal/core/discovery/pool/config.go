package pool

import "github.com/cherho0/Fast-DDS/config"

// Config 对象池配置
type Config struct {
	// Allocation 新建记录的 locator 容量
	Allocation config.AllocationConfig

	// InitialProxies 预分配的空闲记录数
	InitialProxies int

	// MaxFreeProxies 空闲列表上限，0 表示不限
	MaxFreeProxies int
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return ConfigFromUnified(nil)
}

// ConfigFromUnified 从统一配置创建对象池配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Config{
		Allocation:     cfg.Allocation,
		InitialProxies: cfg.Discovery.InitialProxies,
		MaxFreeProxies: cfg.Discovery.MaxFreeProxies,
	}
}
