// Package app 提供发现子系统的应用编排层
//
// app 包负责：
// - fx 模块组装（config → transport → pool）
// - 依赖注入协调
// - 生命周期管理
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/cherho0/Fast-DDS/config"
	"github.com/cherho0/Fast-DDS/internal/core/discovery/pool"
	"github.com/cherho0/Fast-DDS/internal/core/transport"
	"github.com/cherho0/Fast-DDS/pkg/lib/log"
)

var logger = log.Logger("app")

// 启停超时
const lifecycleTimeout = 30 * time.Second

// Bootstrap 应用引导程序
//
// Bootstrap 负责：
// - 校验配置
// - 组装 fx 模块
// - 管理应用生命周期
type Bootstrap struct {
	config     *config.Config
	registerer prometheus.Registerer
	fxApp      *fx.App

	pool    *pool.Pool
	network *transport.NetworkFactory
}

// NewBootstrap 创建引导程序，cfg 为 nil 时使用默认配置
func NewBootstrap(cfg *config.Config) *Bootstrap {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Bootstrap{config: cfg}
}

// WithRegisterer 指定指标注册器，须在 Build 之前调用
func (b *Bootstrap) WithRegisterer(reg prometheus.Registerer) *Bootstrap {
	b.registerer = reg
	return b
}

// Build 构建并启动运行时
func (b *Bootstrap) Build() (*Runtime, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	b.fxApp = fx.New(
		fx.Options(b.setupModules()...),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.Populate(&b.pool, &b.network),
	)
	if err := b.fxApp.Err(); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancel()
	if err := b.fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("start app: %w", err)
	}

	logger.Info("发现子系统已启动",
		"maxUnicast", b.config.Allocation.MaxUnicastLocators,
		"lease", b.config.Discovery.LeaseDuration)

	return &Runtime{
		Config:  b.config,
		Pool:    b.pool,
		Network: b.network,
		stop:    b.Stop,
	}, nil
}

// Stop 停止应用
func (b *Bootstrap) Stop(ctx context.Context) error {
	if b.fxApp == nil {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()

	return b.fxApp.Stop(stopCtx)
}

// setupModules 组装所有 fx 模块
func (b *Bootstrap) setupModules() []fx.Option {
	opts := []fx.Option{
		// 配置（Tier 0）
		fx.Supply(b.config),

		// 传输（Tier 1）
		transport.Module(),

		// 对象池（Tier 2）
		pool.Module(),
	}
	if b.registerer != nil {
		reg := b.registerer
		opts = append(opts, fx.Provide(func() prometheus.Registerer { return reg }))
	}
	return opts
}
