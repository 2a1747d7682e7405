package parameter

import (
	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// 定长参数的内容长度
const (
	ProtocolVersionLength         = 4
	VendorIDLength                = 4
	BoolLength                    = 4
	GUIDLength                    = types.GUIDSize
	KeyHashLength                 = types.GUIDSize
	LocatorLength                 = 24
	TimeLength                    = 8
	BuiltinEndpointSetLength      = 4
	ParticipantSecurityInfoLength = 8
)

// Parameter 参数列表中的单个参数
//
// 这是封闭接口，只有本包定义的类型实现它。
type Parameter interface {
	// ID 返回参数标识
	ID() ID

	// size 返回已按 4 字节补齐的内容长度
	size() int

	// write 写入内容，调用前已确认容量
	write(m *cdr.Message)
}

// ============================================================================
//                              定长参数
// ============================================================================

// ProtocolVersion PID_PROTOCOL_VERSION
type ProtocolVersion struct {
	Version types.ProtocolVersion
}

func (ProtocolVersion) ID() ID { return PIDProtocolVersion }
func (ProtocolVersion) size() int { return ProtocolVersionLength }
func (p ProtocolVersion) write(m *cdr.Message) {
	_ = m.AddOctet(p.Version.Major)
	_ = m.AddOctet(p.Version.Minor)
	_ = m.AddPadding(2)
}

// VendorID PID_VENDORID
type VendorID struct {
	Vendor types.VendorID
}

func (VendorID) ID() ID { return PIDVendorID }
func (VendorID) size() int { return VendorIDLength }
func (p VendorID) write(m *cdr.Message) {
	_ = m.AddOctets(p.Vendor[:])
	_ = m.AddPadding(2)
}

// Bool 布尔参数（PID_EXPECTS_INLINE_QOS 等）
type Bool struct {
	PID   ID
	Value bool
}

func (p Bool) ID() ID { return p.PID }
func (Bool) size() int { return BoolLength }
func (p Bool) write(m *cdr.Message) {
	var v byte
	if p.Value {
		v = 1
	}
	_ = m.AddOctet(v)
	_ = m.AddPadding(3)
}

// GUID GUID 参数（PID_PARTICIPANT_GUID 等）
type GUID struct {
	PID  ID
	GUID types.GUID
}

func (p GUID) ID() ID { return p.PID }
func (GUID) size() int { return GUIDLength }
func (p GUID) write(m *cdr.Message) {
	b := p.GUID.Bytes()
	_ = m.AddOctets(b[:])
}

// KeyHash PID_KEY_HASH
type KeyHash struct {
	Key types.InstanceHandle
}

func (KeyHash) ID() ID { return PIDKeyHash }
func (KeyHash) size() int { return KeyHashLength }
func (p KeyHash) write(m *cdr.Message) {
	_ = m.AddOctets(p.Key[:])
}

// Locator 地址参数，PID 区分四种用途
type Locator struct {
	PID     ID
	Locator types.Locator
}

func (p Locator) ID() ID { return p.PID }
func (Locator) size() int { return LocatorLength }
func (p Locator) write(m *cdr.Message) {
	_ = m.AddInt32(int32(p.Locator.Kind))
	_ = m.AddUint32(p.Locator.Port)
	_ = m.AddOctets(p.Locator.Address[:])
}

// Time 时长参数（PID_PARTICIPANT_LEASE_DURATION 等）
type Time struct {
	PID      ID
	Duration types.Duration
}

func (p Time) ID() ID { return p.PID }
func (Time) size() int { return TimeLength }
func (p Time) write(m *cdr.Message) {
	_ = m.AddInt32(p.Duration.Seconds)
	_ = m.AddUint32(p.Duration.Fraction())
}

// BuiltinEndpointSet PID_BUILTIN_ENDPOINT_SET
type BuiltinEndpointSet struct {
	Endpoints types.BuiltinEndpointSet
}

func (BuiltinEndpointSet) ID() ID { return PIDBuiltinEndpointSet }
func (BuiltinEndpointSet) size() int { return BuiltinEndpointSetLength }
func (p BuiltinEndpointSet) write(m *cdr.Message) {
	_ = m.AddUint32(uint32(p.Endpoints))
}

// ParticipantSecurityInfo PID_PARTICIPANT_SECURITY_INFO
type ParticipantSecurityInfo struct {
	SecurityAttributes       uint32
	PluginSecurityAttributes uint32
}

func (ParticipantSecurityInfo) ID() ID { return PIDParticipantSecurityInfo }
func (ParticipantSecurityInfo) size() int { return ParticipantSecurityInfoLength }
func (p ParticipantSecurityInfo) write(m *cdr.Message) {
	_ = m.AddUint32(p.SecurityAttributes)
	_ = m.AddUint32(p.PluginSecurityAttributes)
}

// ============================================================================
//                              变长参数
// ============================================================================

// String 字符串参数（PID_ENTITY_NAME 等）
type String struct {
	PID   ID
	Value string
}

func (p String) ID() ID { return p.PID }
func (p String) size() int { return cdr.StringSize(p.Value) }
func (p String) write(m *cdr.Message) {
	_ = m.AddString(p.Value)
}

// UserData PID_USER_DATA
type UserData struct {
	Data []byte
}

func (UserData) ID() ID { return PIDUserData }
func (p UserData) size() int { return cdr.SequenceSize(p.Data) }
func (p UserData) write(m *cdr.Message) {
	_ = m.AddSequence(p.Data)
}

// PropertyList PID_PROPERTY_LIST
type PropertyList struct {
	Properties []types.PropertyPair
}

func (PropertyList) ID() ID { return PIDPropertyList }
func (p PropertyList) size() int {
	n := 4
	for _, prop := range p.Properties {
		n += cdr.StringSize(prop.Name) + cdr.StringSize(prop.Value)
	}
	return n
}
func (p PropertyList) write(m *cdr.Message) {
	_ = m.AddUint32(uint32(len(p.Properties)))
	for _, prop := range p.Properties {
		_ = m.AddString(prop.Name)
		_ = m.AddString(prop.Value)
	}
}

// Token 安全令牌参数（PID_IDENTITY_TOKEN / PID_PERMISSIONS_TOKEN）
//
// 只写出 Propagate 为 true 的属性；解码得到的属性 Propagate 均为 true。
type Token struct {
	PID   ID
	Token types.Token
}

func (p Token) ID() ID { return p.PID }
func (p Token) size() int {
	n := cdr.StringSize(p.Token.ClassID) + 4 + 4
	for _, prop := range p.Token.Properties {
		if prop.Propagate {
			n += cdr.StringSize(prop.Name) + cdr.StringSize(prop.Value)
		}
	}
	for _, bp := range p.Token.BinaryProperties {
		if bp.Propagate {
			n += cdr.StringSize(bp.Name) + cdr.SequenceSize(bp.Value)
		}
	}
	return n
}
func (p Token) write(m *cdr.Message) {
	_ = m.AddString(p.Token.ClassID)

	var props uint32
	for _, prop := range p.Token.Properties {
		if prop.Propagate {
			props++
		}
	}
	_ = m.AddUint32(props)
	for _, prop := range p.Token.Properties {
		if prop.Propagate {
			_ = m.AddString(prop.Name)
			_ = m.AddString(prop.Value)
		}
	}

	var bins uint32
	for _, bp := range p.Token.BinaryProperties {
		if bp.Propagate {
			bins++
		}
	}
	_ = m.AddUint32(bins)
	for _, bp := range p.Token.BinaryProperties {
		if bp.Propagate {
			_ = m.AddString(bp.Name)
			_ = m.AddSequence(bp.Value)
		}
	}
}

// Unknown 未识别或本层不关心的参数，保留原始内容
type Unknown struct {
	PID     ID
	Payload []byte
}

func (p Unknown) ID() ID { return p.PID }
func (p Unknown) size() int { return len(p.Payload) + cdr.Pad(len(p.Payload)) }
func (p Unknown) write(m *cdr.Message) {
	_ = m.AddOctets(p.Payload)
	_ = m.AddPadding(cdr.Pad(len(p.Payload)))
}
