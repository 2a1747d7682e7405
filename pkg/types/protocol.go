package types

import "fmt"

// ============================================================================
//                              ProtocolVersion - 协议版本
// ============================================================================

// ProtocolVersion RTPS 协议版本
type ProtocolVersion struct {
	Major uint8
	Minor uint8
}

// LocalProtocolVersion 本实现支持的协议版本
//
// 解码时对端主版本低于此版本的参与者会被拒绝。
var LocalProtocolVersion = ProtocolVersion{Major: 2, Minor: 3}

// String 返回 "major.minor"
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ============================================================================
//                              VendorID - 厂商标识
// ============================================================================

// VendorID 2 字节厂商标识
type VendorID [2]byte

var (
	// VendorIDUnknown 未知厂商
	VendorIDUnknown = VendorID{0x00, 0x00}

	// VendorIDLocal 本实现的厂商 ID
	VendorIDLocal = VendorID{0x01, 0x0f}
)

// String 返回 "hi.lo"
func (v VendorID) String() string {
	return fmt.Sprintf("%d.%d", v[0], v[1])
}

// ============================================================================
//                              BuiltinEndpointSet - 内置端点
// ============================================================================

// BuiltinEndpointSet 参与者声明的内置端点位掩码
type BuiltinEndpointSet uint32

// 内置端点位
const (
	DiscParticipantAnnouncer        BuiltinEndpointSet = 1 << 0
	DiscParticipantDetector         BuiltinEndpointSet = 1 << 1
	DiscPublicationAnnouncer        BuiltinEndpointSet = 1 << 2
	DiscPublicationDetector         BuiltinEndpointSet = 1 << 3
	DiscSubscriptionAnnouncer       BuiltinEndpointSet = 1 << 4
	DiscSubscriptionDetector        BuiltinEndpointSet = 1 << 5
	DiscParticipantProxyAnnouncer   BuiltinEndpointSet = 1 << 6
	DiscParticipantProxyDetector    BuiltinEndpointSet = 1 << 7
	DiscParticipantStateAnnouncer   BuiltinEndpointSet = 1 << 8
	DiscParticipantStateDetector    BuiltinEndpointSet = 1 << 9
	ParticipantMessageDataWriter    BuiltinEndpointSet = 1 << 10
	ParticipantMessageDataReader    BuiltinEndpointSet = 1 << 11
	DiscPublicationSecureAnnouncer  BuiltinEndpointSet = 1 << 16
	DiscPublicationSecureDetector   BuiltinEndpointSet = 1 << 17
	DiscSubscriptionSecureAnnouncer BuiltinEndpointSet = 1 << 18
	DiscSubscriptionSecureDetector  BuiltinEndpointSet = 1 << 19
	ParticipantMessageSecureWriter  BuiltinEndpointSet = 1 << 20
	ParticipantMessageSecureReader  BuiltinEndpointSet = 1 << 21
	ParticipantStatelessWriter      BuiltinEndpointSet = 1 << 22
	ParticipantStatelessReader      BuiltinEndpointSet = 1 << 23
	ParticipantVolatileSecureWriter BuiltinEndpointSet = 1 << 24
	ParticipantVolatileSecureReader BuiltinEndpointSet = 1 << 25
)

// DefaultBuiltinEndpoints SPDP + SEDP + WLP 的默认组合
const DefaultBuiltinEndpoints = DiscParticipantAnnouncer | DiscParticipantDetector |
	DiscPublicationAnnouncer | DiscPublicationDetector |
	DiscSubscriptionAnnouncer | DiscSubscriptionDetector |
	ParticipantMessageDataWriter | ParticipantMessageDataReader

// Has 检查是否声明了所有给定端点
func (s BuiltinEndpointSet) Has(bits BuiltinEndpointSet) bool {
	return s&bits == bits
}
