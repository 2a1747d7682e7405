package pool

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/cherho0/Fast-DDS/internal/core/discovery/participant"
	"github.com/cherho0/Fast-DDS/pkg/lib/log"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

var logger = log.Logger("discovery/pool")

// Option 对象池选项
type Option func(*Pool)

// WithRegisterer 指定指标注册器
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Pool) {
		p.reg = reg
	}
}

// Stats 对象池统计
type Stats struct {
	Live     int
	Free     int
	Acquired uint64
	Recycled uint64
}

// entry 活跃记录，refs 由 Pool.mu 保护
type entry struct {
	key  types.GuidPrefix
	data *participant.ProxyData
	refs int
}

// Pool 参与者代理数据对象池
type Pool struct {
	cfg Config
	reg prometheus.Registerer

	mu     sync.Mutex
	live   map[types.GuidPrefix]*entry
	free   []*participant.ProxyData
	closed bool

	acquired uint64
	recycled uint64

	metrics *metrics
}

// New 创建对象池并预分配 InitialProxies 条空闲记录
func New(cfg Config, opts ...Option) *Pool {
	p := &Pool{
		cfg:  cfg,
		live: make(map[types.GuidPrefix]*entry),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics = newMetrics(p.reg)

	p.free = make([]*participant.ProxyData, 0, max(cfg.InitialProxies, 0))
	for i := 0; i < cfg.InitialProxies; i++ {
		p.free = append(p.free, participant.New(cfg.Allocation))
	}
	p.metrics.free.Set(float64(len(p.free)))

	logger.Debug("创建代理对象池", "initial", cfg.InitialProxies, "maxFree", cfg.MaxFreeProxies)
	return p
}

// Acquire 获取 key 对应的记录
//
// 已有活跃记录时增加引用并返回 created=false；否则从空闲列表取出（或新建）一条
// 已清空的记录，返回 created=true，由调用方填充。
func (p *Pool) Acquire(key types.GuidPrefix) (*Handle, bool, error) {
	return p.AcquireWith(key, nil)
}

// AcquireWith 与 Acquire 相同，但新建记录时先调用 init 填充
//
// init 在记录对其他获取者可见之前执行，并发获取同一 key 的调用方不会看到空记录。
// init 持有池锁运行，不得回调 Pool。
func (p *Pool) AcquireWith(key types.GuidPrefix, init func(*participant.ProxyData)) (*Handle, bool, error) {
	if key.IsUnknown() {
		return nil, false, ErrUnknownKey
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.metrics.acquired.WithLabelValues(resultRefused).Inc()
		return nil, false, ErrClosed
	}

	p.acquired++
	if e, ok := p.live[key]; ok {
		e.refs++
		p.metrics.acquired.WithLabelValues(resultShared).Inc()
		return newHandle(p, e), false, nil
	}

	e := &entry{key: key, data: p.takeFreeLocked(), refs: 1}
	if init != nil {
		init(e.data)
	}
	p.live[key] = e
	p.metrics.live.Set(float64(len(p.live)))
	p.metrics.acquired.WithLabelValues(resultCreated).Inc()
	logger.Debug("分配代理记录", "prefix", key)
	return newHandle(p, e), true, nil
}

// Lookup 查找已有的活跃记录，不创建
func (p *Pool) Lookup(key types.GuidPrefix) (*Handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.live[key]
	if !ok || p.closed {
		return nil, false
	}
	e.refs++
	return newHandle(p, e), true
}

// Keys 返回所有活跃记录的键（有序）
func (p *Pool) Keys() []types.GuidPrefix {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sortedKeysLocked()
}

// Stats 返回统计信息
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Live:     len(p.live),
		Free:     len(p.free),
		Acquired: p.acquired,
		Recycled: p.recycled,
	}
}

// Close 关闭对象池
//
// 关闭后不再接受获取；仍被引用的记录逐个报告为错误。已关闭时返回 nil。
// 关闭后释放的句柄照常清空记录，但记录不再回收。
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.free = nil
	p.metrics.free.Set(0)

	var errs error
	for _, key := range p.sortedKeysLocked() {
		e := p.live[key]
		errs = multierr.Append(errs, fmt.Errorf("%w: %s (%d refs)", ErrOutstandingReferences, key, e.refs))
	}
	if errs != nil {
		logger.Error("代理对象池关闭时仍有未释放的引用", "count", len(p.live))
	}
	return errs
}

func (p *Pool) sortedKeysLocked() []types.GuidPrefix {
	keys := make([]types.GuidPrefix, 0, len(p.live))
	for k := range p.live {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b types.GuidPrefix) int {
		return bytes.Compare(a[:], b[:])
	})
	return keys
}

func (p *Pool) takeFreeLocked() *participant.ProxyData {
	n := len(p.free)
	if n == 0 {
		return participant.New(p.cfg.Allocation)
	}
	pd := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	p.metrics.free.Set(float64(len(p.free)))
	return pd
}

// retain 为已持有的 entry 增加引用
func (p *Pool) retain(e *entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e.refs == 0 {
		return ErrReleased
	}
	e.refs++
	return nil
}

// release 减少引用，最后一个引用释放时清空并回收记录
func (p *Pool) release(e *entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e.refs--
	if e.refs > 0 {
		return
	}

	if p.live[e.key] == e {
		delete(p.live, e.key)
	}
	p.metrics.live.Set(float64(len(p.live)))

	e.data.Clear()
	p.recycled++
	p.metrics.recycled.Inc()

	if p.closed || (p.cfg.MaxFreeProxies > 0 && len(p.free) >= p.cfg.MaxFreeProxies) {
		return
	}
	p.free = append(p.free, e.data)
	p.metrics.free.Set(float64(len(p.free)))
}

// ============================================================================
//                              Handle
// ============================================================================

// Handle 对池中记录的一个引用
//
// 每个 Handle 只能释放一次，重复调用 Release 无效果。
type Handle struct {
	pool     *Pool
	entry    *entry
	released atomic.Bool
}

func newHandle(p *Pool, e *entry) *Handle {
	return &Handle{pool: p, entry: e}
}

// Key 返回记录的键
func (h *Handle) Key() types.GuidPrefix {
	return h.entry.key
}

// Data 返回记录；句柄释放后不应再使用
func (h *Handle) Data() *participant.ProxyData {
	return h.entry.data
}

// Retain 基于当前句柄创建一个新的独立引用
func (h *Handle) Retain() (*Handle, error) {
	if h.released.Load() {
		return nil, ErrReleased
	}
	if err := h.pool.retain(h.entry); err != nil {
		return nil, err
	}
	return newHandle(h.pool, h.entry), nil
}

// Release 释放引用
func (h *Handle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	h.pool.release(h.entry)
}

// Released 检查句柄是否已释放
func (h *Handle) Released() bool {
	return h.released.Load()
}
