package parameter

import "fmt"

// ID 参数标识（PID）
type ID uint16

// 参数标识，数值与 RTPS 注册表一致
const (
	PIDPad                         ID = 0x0000
	PIDSentinel                    ID = 0x0001
	PIDParticipantLeaseDuration    ID = 0x0002
	PIDTopicName                   ID = 0x0005
	PIDTypeName                    ID = 0x0007
	PIDDomainID                    ID = 0x000f
	PIDProtocolVersion             ID = 0x0015
	PIDVendorID                    ID = 0x0016
	PIDUserData                    ID = 0x002c
	PIDDefaultUnicastLocator       ID = 0x0031
	PIDMetatrafficUnicastLocator   ID = 0x0032
	PIDMetatrafficMulticastLocator ID = 0x0033
	PIDParticipantManualLiveliness ID = 0x0034
	PIDExpectsInlineQos            ID = 0x0043
	PIDDefaultMulticastLocator     ID = 0x0048
	PIDParticipantGUID             ID = 0x0050
	PIDBuiltinEndpointSet          ID = 0x0058
	PIDPropertyList                ID = 0x0059
	PIDEntityName                  ID = 0x0062
	PIDKeyHash                     ID = 0x0070
	PIDStatusInfo                  ID = 0x0071
	PIDIdentityToken               ID = 0x1001
	PIDPermissionsToken            ID = 0x1002
	PIDParticipantSecurityInfo     ID = 0x1005
)

var idNames = map[ID]string{
	PIDPad:                         "PID_PAD",
	PIDSentinel:                    "PID_SENTINEL",
	PIDParticipantLeaseDuration:    "PID_PARTICIPANT_LEASE_DURATION",
	PIDTopicName:                   "PID_TOPIC_NAME",
	PIDTypeName:                    "PID_TYPE_NAME",
	PIDDomainID:                    "PID_DOMAIN_ID",
	PIDProtocolVersion:             "PID_PROTOCOL_VERSION",
	PIDVendorID:                    "PID_VENDORID",
	PIDUserData:                    "PID_USER_DATA",
	PIDDefaultUnicastLocator:       "PID_DEFAULT_UNICAST_LOCATOR",
	PIDMetatrafficUnicastLocator:   "PID_METATRAFFIC_UNICAST_LOCATOR",
	PIDMetatrafficMulticastLocator: "PID_METATRAFFIC_MULTICAST_LOCATOR",
	PIDParticipantManualLiveliness: "PID_PARTICIPANT_MANUAL_LIVELINESS_COUNT",
	PIDExpectsInlineQos:            "PID_EXPECTS_INLINE_QOS",
	PIDDefaultMulticastLocator:     "PID_DEFAULT_MULTICAST_LOCATOR",
	PIDParticipantGUID:             "PID_PARTICIPANT_GUID",
	PIDBuiltinEndpointSet:          "PID_BUILTIN_ENDPOINT_SET",
	PIDPropertyList:                "PID_PROPERTY_LIST",
	PIDEntityName:                  "PID_ENTITY_NAME",
	PIDKeyHash:                     "PID_KEY_HASH",
	PIDStatusInfo:                  "PID_STATUS_INFO",
	PIDIdentityToken:               "PID_IDENTITY_TOKEN",
	PIDPermissionsToken:            "PID_PERMISSIONS_TOKEN",
	PIDParticipantSecurityInfo:     "PID_PARTICIPANT_SECURITY_INFO",
}

// String 返回注册名，未注册的 id 以十六进制表示
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("PID(0x%04x)", uint16(id))
}

// IsLocator 检查是否为四种 locator 参数之一
func (id ID) IsLocator() bool {
	switch id {
	case PIDMetatrafficUnicastLocator, PIDMetatrafficMulticastLocator,
		PIDDefaultUnicastLocator, PIDDefaultMulticastLocator:
		return true
	}
	return false
}

// IsSecurity 检查是否为安全扩展参数
func (id ID) IsSecurity() bool {
	switch id {
	case PIDIdentityToken, PIDPermissionsToken, PIDParticipantSecurityInfo:
		return true
	}
	return false
}
