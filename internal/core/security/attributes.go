package security

// ParticipantAttributes 参与者安全属性位掩码
type ParticipantAttributes uint32

// 参与者安全属性位
const (
	AttrRTPSProtected       ParticipantAttributes = 1 << 0
	AttrDiscoveryProtected  ParticipantAttributes = 1 << 1
	AttrLivelinessProtected ParticipantAttributes = 1 << 2
	AttrValid               ParticipantAttributes = 1 << 31
)

// PluginAttributes 插件安全属性位掩码
type PluginAttributes uint32

// 插件安全属性位
const (
	PluginRTPSEncrypted                 PluginAttributes = 1 << 0
	PluginDiscoveryEncrypted            PluginAttributes = 1 << 1
	PluginLivelinessEncrypted           PluginAttributes = 1 << 2
	PluginRTPSOriginAuthenticated       PluginAttributes = 1 << 3
	PluginDiscoveryOriginAuthenticated  PluginAttributes = 1 << 4
	PluginLivelinessOriginAuthenticated PluginAttributes = 1 << 5
	PluginValid                         PluginAttributes = 1 << 31
)

// IsValid 检查属性是否已由插件填充
func (a ParticipantAttributes) IsValid() bool {
	return a&AttrValid != 0
}

// IsValid 检查属性是否已由插件填充
func (a PluginAttributes) IsValid() bool {
	return a&PluginValid != 0
}
