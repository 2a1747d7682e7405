package pool

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/cherho0/Fast-DDS/config"
)

// Params 对象池依赖
type Params struct {
	fx.In

	Config     *config.Config
	Registerer prometheus.Registerer `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("participant_pool",
		fx.Provide(ProvidePool),
		fx.Invoke(registerLifecycle),
	)
}

// ProvidePool 从统一配置提供对象池
func ProvidePool(p Params) *Pool {
	var opts []Option
	if p.Registerer != nil {
		opts = append(opts, WithRegisterer(p.Registerer))
	}
	return New(ConfigFromUnified(p.Config), opts...)
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, p *Pool) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
}
