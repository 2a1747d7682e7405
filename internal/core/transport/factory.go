package transport

import (
	"fmt"
	"net"
	"net/netip"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cherho0/Fast-DDS/pkg/lib/log"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

var logger = log.Logger("core/transport")

var (
	loopbackV4 = netip.AddrFrom4([4]byte{127, 0, 0, 1})
	loopbackV6 = netip.IPv6Loopback()
)

// transformResult 缓存的转换结果
type transformResult struct {
	locator types.Locator
	ok      bool
}

// NetworkFactory 远端 locator 转换器
//
// 并发安全：配置与本机地址表在创建后只读，缓存自带锁。
type NetworkFactory struct {
	enabled map[types.LocatorKind]struct{}
	local   map[netip.Addr]struct{}
	cache   *lru.Cache[types.Locator, transformResult]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewNetworkFactory 创建网络工厂
//
// localAddrs 为本机接口地址；传 nil 时不做本机地址改写。
func NewNetworkFactory(cfg Config, localAddrs []netip.Addr) (*NetworkFactory, error) {
	if len(cfg.EnabledKinds) == 0 {
		return nil, ErrNoTransport
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cfg.CacheSize)
	}

	cache, err := lru.New[types.Locator, transformResult](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create transform cache: %w", err)
	}

	nf := &NetworkFactory{
		enabled: make(map[types.LocatorKind]struct{}, len(cfg.EnabledKinds)),
		local:   make(map[netip.Addr]struct{}, len(localAddrs)),
		cache:   cache,
	}
	for _, k := range cfg.EnabledKinds {
		nf.enabled[k] = struct{}{}
	}
	for _, a := range localAddrs {
		nf.local[a.Unmap()] = struct{}{}
	}

	logger.Debug("创建网络工厂", "kinds", len(nf.enabled), "localAddrs", len(nf.local), "cacheSize", cfg.CacheSize)
	return nf, nil
}

// IsLocatorSupported 检查 locator 的传输类型是否启用
func (nf *NetworkFactory) IsLocatorSupported(l types.Locator) bool {
	_, ok := nf.enabled[l.Kind]
	return ok
}

// IsLocalAddress 检查 locator 是否指向本机接口
func (nf *NetworkFactory) IsLocalAddress(l types.Locator) bool {
	if !l.Kind.IsIPv4() && !l.Kind.IsIPv6() {
		return false
	}
	_, ok := nf.local[l.Addr().Unmap()]
	return ok
}

// TransformRemoteLocator 将对端公告的 locator 转换为本地可用的 locator
//
// 返回 false 表示该 locator 不可用，调用方应丢弃它。
func (nf *NetworkFactory) TransformRemoteLocator(remote types.Locator) (types.Locator, bool) {
	if r, ok := nf.cache.Get(remote); ok {
		nf.hits.Add(1)
		return r.locator, r.ok
	}
	nf.misses.Add(1)

	r := nf.transform(remote)
	nf.cache.Add(remote, r)
	return r.locator, r.ok
}

func (nf *NetworkFactory) transform(remote types.Locator) transformResult {
	if !remote.IsValid() || !nf.IsLocatorSupported(remote) {
		return transformResult{locator: types.InvalidLocator}
	}
	if !nf.IsLocalAddress(remote) {
		return transformResult{locator: remote, ok: true}
	}

	loopback := loopbackV4
	if remote.Kind.IsIPv6() {
		loopback = loopbackV6
	}
	return transformResult{locator: types.NewLocator(remote.Kind, loopback, remote.Port), ok: true}
}

// CacheStats 返回缓存命中与未命中次数
func (nf *NetworkFactory) CacheStats() (hits, misses uint64) {
	return nf.hits.Load(), nf.misses.Load()
}

// Purge 清空转换缓存（本机地址变化后调用）
func (nf *NetworkFactory) Purge() {
	nf.cache.Purge()
}

// InterfaceAddresses 返回本机所有接口的单播地址（不含回环）
func InterfaceAddresses() ([]netip.Addr, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, fmt.Errorf("list interface addresses: %w", err)
	}

	out := make([]netip.Addr, 0, len(addrs))
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip, ok := netip.AddrFromSlice(ipnet.IP)
		if !ok || ip.IsLoopback() {
			continue
		}
		out = append(out, ip.Unmap())
	}
	return out, nil
}
