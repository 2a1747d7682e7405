package types

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// LocatorKind 传输类型
type LocatorKind int32

// 已注册的 Locator 类型
const (
	LocatorKindInvalid  LocatorKind = -1
	LocatorKindReserved LocatorKind = 0
	LocatorKindUDPv4    LocatorKind = 1
	LocatorKindUDPv6    LocatorKind = 2
	LocatorKindTCPv4    LocatorKind = 4
	LocatorKindTCPv6    LocatorKind = 8
	LocatorKindSHM      LocatorKind = 16
)

var locatorKindNames = map[LocatorKind]string{
	LocatorKindInvalid:  "INVALID",
	LocatorKindReserved: "RESERVED",
	LocatorKindUDPv4:    "UDPv4",
	LocatorKindUDPv6:    "UDPv6",
	LocatorKindTCPv4:    "TCPv4",
	LocatorKindTCPv6:    "TCPv6",
	LocatorKindSHM:      "SHM",
}

// String 返回类型名
func (k LocatorKind) String() string {
	if name, ok := locatorKindNames[k]; ok {
		return name
	}
	return "LocatorKind(" + strconv.Itoa(int(k)) + ")"
}

// IsIPv4 检查是否为 IPv4 类传输
func (k LocatorKind) IsIPv4() bool {
	return k == LocatorKindUDPv4 || k == LocatorKindTCPv4
}

// IsIPv6 检查是否为 IPv6 类传输
func (k LocatorKind) IsIPv6() bool {
	return k == LocatorKindUDPv6 || k == LocatorKindTCPv6
}

// LocatorAddressSize 地址字段长度
const LocatorAddressSize = 16

// Locator 协议层网络地址（传输类型 + 地址 + 端口）
//
// IPv4 地址存放在 Address 的最后 4 个字节。
type Locator struct {
	Kind    LocatorKind
	Port    uint32
	Address [LocatorAddressSize]byte
}

// InvalidLocator 无效地址
var InvalidLocator = Locator{Kind: LocatorKindInvalid}

// NewLocator 从 netip.Addr 构造 Locator
func NewLocator(kind LocatorKind, addr netip.Addr, port uint32) Locator {
	l := Locator{Kind: kind, Port: port}
	if addr.Is4() {
		a4 := addr.As4()
		copy(l.Address[12:], a4[:])
	} else if addr.IsValid() {
		l.Address = addr.As16()
	}
	return l
}

// IsValid 检查类型与端口是否有效
func (l Locator) IsValid() bool {
	return l.Kind >= 0 && l.Port <= 0xffff
}

// Addr 返回 IP 地址
func (l Locator) Addr() netip.Addr {
	if l.Kind.IsIPv4() {
		return netip.AddrFrom4([4]byte(l.Address[12:]))
	}
	return netip.AddrFrom16(l.Address)
}

// IsMulticast 检查是否为组播地址
func (l Locator) IsMulticast() bool {
	if l.Kind.IsIPv4() || l.Kind.IsIPv6() {
		return l.Addr().IsMulticast()
	}
	return false
}

// IsLoopback 检查是否为回环地址
func (l Locator) IsLoopback() bool {
	if l.Kind.IsIPv4() || l.Kind.IsIPv6() {
		return l.Addr().IsLoopback()
	}
	return false
}

// String 返回 "UDPv4:[192.168.1.1]:7410" 形式
func (l Locator) String() string {
	addr := ""
	if l.Kind.IsIPv4() || l.Kind.IsIPv6() {
		addr = l.Addr().String()
	}
	return fmt.Sprintf("%s:[%s]:%d", l.Kind, addr, l.Port)
}

// ParseLocator 解析 Locator 文本
//
// 接受 "UDPv4:[192.168.1.1]:7410" 与 "udpv4:192.168.1.1:7410"，类型名不区分大小写。
// IPv6 地址必须加方括号。
func ParseLocator(s string) (Locator, error) {
	kindPart, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return InvalidLocator, fmt.Errorf("%w: %q", ErrInvalidLocator, s)
	}

	kind := LocatorKindInvalid
	for k, name := range locatorKindNames {
		if strings.EqualFold(name, kindPart) {
			kind = k
			break
		}
	}
	if kind == LocatorKindInvalid || kind == LocatorKindReserved {
		return InvalidLocator, fmt.Errorf("%w: %q", ErrUnknownLocatorKind, kindPart)
	}

	i := strings.LastIndexByte(rest, ':')
	if i < 0 {
		return InvalidLocator, fmt.Errorf("%w: missing port in %q", ErrInvalidLocator, s)
	}
	addrPart, portPart := rest[:i], rest[i+1:]
	port, err := strconv.ParseUint(portPart, 10, 32)
	if err != nil {
		return InvalidLocator, fmt.Errorf("%w: port: %v", ErrInvalidLocator, err)
	}

	addrPart = strings.TrimSuffix(strings.TrimPrefix(addrPart, "["), "]")
	if addrPart == "" {
		if kind.IsIPv4() || kind.IsIPv6() {
			return InvalidLocator, fmt.Errorf("%w: missing address in %q", ErrInvalidLocator, s)
		}
		return Locator{Kind: kind, Port: uint32(port)}, nil
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return InvalidLocator, fmt.Errorf("%w: address: %v", ErrInvalidLocator, err)
	}
	if kind.IsIPv4() && !addr.Is4() || kind.IsIPv6() && addr.Is4() {
		return InvalidLocator, fmt.Errorf("%w: address %s does not match %s", ErrInvalidLocator, addr, kind)
	}
	return NewLocator(kind, addr, uint32(port)), nil
}

// MustParseLocator 解析失败时 panic，仅用于常量与测试
func MustParseLocator(s string) Locator {
	l, err := ParseLocator(s)
	if err != nil {
		panic(err)
	}
	return l
}
