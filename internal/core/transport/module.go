package transport

import (
	"context"

	"go.uber.org/fx"

	"github.com/cherho0/Fast-DDS/config"
)

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("transport",
		fx.Provide(
			ProvideConfig,
			ProvideNetworkFactory,
		),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideConfig 从统一配置提供网络工厂配置
func ProvideConfig(cfg *config.Config) Config {
	return ConfigFromUnified(cfg)
}

// ProvideNetworkFactory 提供网络工厂
//
// 无法枚举本机接口时仅记录警告，工厂仍可用，只是不做回环改写。
func ProvideNetworkFactory(cfg Config) (*NetworkFactory, error) {
	addrs, err := InterfaceAddresses()
	if err != nil {
		logger.Warn("枚举本机接口失败", "error", err)
	}
	return NewNetworkFactory(cfg, addrs)
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, nf *NetworkFactory) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hits, misses := nf.CacheStats()
			logger.Debug("网络工厂停止", "cacheHits", hits, "cacheMisses", misses)
			nf.Purge()
			return nil
		},
	})
}
