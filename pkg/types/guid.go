package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
//                              GuidPrefix - 参与者前缀
// ============================================================================

// GuidPrefixSize GUID 前缀长度
const GuidPrefixSize = 12

// GuidPrefix 参与者 GUID 前缀
//
// 同一参与者内所有实体共享同一前缀，发现层以它作为参与者身份。
type GuidPrefix [GuidPrefixSize]byte

// UnknownGuidPrefix 未知前缀（全零）
var UnknownGuidPrefix GuidPrefix

// IsUnknown 检查前缀是否未知
func (p GuidPrefix) IsUnknown() bool {
	return p == UnknownGuidPrefix
}

// String 返回点分十六进制表示，例如 "1.f.0.0.0.0.0.0.0.0.0.1"
func (p GuidPrefix) String() string {
	return dottedHex(p[:])
}

// NewGuidPrefix 生成随机 GUID 前缀
//
// 前两个字节为厂商 ID，其余字节来自随机 UUID。
func NewGuidPrefix(vendor VendorID) GuidPrefix {
	var p GuidPrefix
	p[0] = vendor[0]
	p[1] = vendor[1]
	u := uuid.New()
	copy(p[2:], u[:GuidPrefixSize-2])
	return p
}

// ============================================================================
//                              EntityID - 实体标识
// ============================================================================

// EntityIDSize 实体 ID 长度
const EntityIDSize = 4

// EntityID 参与者内的实体标识
type EntityID [EntityIDSize]byte

var (
	// UnknownEntityID 未知实体
	UnknownEntityID EntityID

	// EntityIDParticipant 参与者自身的实体 ID
	EntityIDParticipant = EntityID{0x00, 0x00, 0x01, 0xc1}
)

// String 返回点分十六进制表示
func (e EntityID) String() string {
	return dottedHex(e[:])
}

// ============================================================================
//                              GUID - 全局唯一标识
// ============================================================================

// GUIDSize GUID 线上长度
const GUIDSize = GuidPrefixSize + EntityIDSize

// GUID 全局唯一标识（前缀 + 实体 ID）
type GUID struct {
	Prefix GuidPrefix
	Entity EntityID
}

// UnknownGUID 未知 GUID（全零）
var UnknownGUID GUID

// IsUnknown 检查 GUID 是否未知
func (g GUID) IsUnknown() bool {
	return g == UnknownGUID
}

// Bytes 返回 16 字节线上表示
func (g GUID) Bytes() [GUIDSize]byte {
	var b [GUIDSize]byte
	copy(b[:GuidPrefixSize], g.Prefix[:])
	copy(b[GuidPrefixSize:], g.Entity[:])
	return b
}

// GUIDFromBytes 从 16 字节恢复 GUID
func GUIDFromBytes(b [GUIDSize]byte) GUID {
	var g GUID
	copy(g.Prefix[:], b[:GuidPrefixSize])
	copy(g.Entity[:], b[GuidPrefixSize:])
	return g
}

// InstanceHandle 返回 GUID 对应的实例键
func (g GUID) InstanceHandle() InstanceHandle {
	return InstanceHandle(g.Bytes())
}

// String 返回 "prefix|entity" 形式的文本，各字节为不补零的十六进制
//
// 例如 "1.f.0.0.0.0.0.0.0.0.0.1|0.0.1.c1"。
func (g GUID) String() string {
	return g.Prefix.String() + "|" + g.Entity.String()
}

// ParseGUID 解析 String 输出的文本
func ParseGUID(s string) (GUID, error) {
	prefixPart, entityPart, ok := strings.Cut(strings.TrimSpace(s), "|")
	if !ok {
		return UnknownGUID, fmt.Errorf("%w: missing '|' in %q", ErrInvalidGUID, s)
	}

	var g GUID
	if err := parseDottedHex(prefixPart, g.Prefix[:]); err != nil {
		return UnknownGUID, fmt.Errorf("%w: prefix: %v", ErrInvalidGUID, err)
	}
	if err := parseDottedHex(entityPart, g.Entity[:]); err != nil {
		return UnknownGUID, fmt.Errorf("%w: entity: %v", ErrInvalidGUID, err)
	}
	return g, nil
}

// ============================================================================
//                              InstanceHandle - 实例键
// ============================================================================

// InstanceHandle 16 字节实例键，发现缓存与对象池以它为键
type InstanceHandle [GUIDSize]byte

// UnknownInstanceHandle 未定义的实例键
var UnknownInstanceHandle InstanceHandle

// IsDefined 检查实例键是否已赋值
func (h InstanceHandle) IsDefined() bool {
	return h != UnknownInstanceHandle
}

// GUID 将实例键还原为 GUID
func (h InstanceHandle) GUID() GUID {
	return GUIDFromBytes(h)
}

// ============================================================================
//                              内部工具
// ============================================================================

func dottedHex(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 16))
	}
	return sb.String()
}

func parseDottedHex(s string, out []byte) error {
	parts := strings.Split(s, ".")
	if len(parts) != len(out) {
		return fmt.Errorf("want %d octets, got %d", len(out), len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return fmt.Errorf("octet %d: %w", i, err)
		}
		out[i] = byte(v)
	}
	return nil
}
