package participant

import (
	"slices"
	"sync"

	"github.com/cherho0/Fast-DDS/config"
	"github.com/cherho0/Fast-DDS/internal/core/rtps/locator"
	"github.com/cherho0/Fast-DDS/internal/core/security"
	"github.com/cherho0/Fast-DDS/pkg/lib/log"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

var logger = log.Logger("discovery/participant")

// PersistenceGUIDProperty 保存持久化 GUID 的保留属性名
const PersistenceGUIDProperty = "PID_PERSISTENCE_GUID"

// ============================================================================
//                              SecurityData
// ============================================================================

// SecurityData 参与者安全信息，零值表示未携带
type SecurityData struct {
	IdentityToken            types.Token
	PermissionsToken         types.Token
	SecurityAttributes       security.ParticipantAttributes
	PluginSecurityAttributes security.PluginAttributes
}

// IsZero 检查是否未携带任何安全信息
func (s SecurityData) IsZero() bool {
	return s.IdentityToken.IsEmpty() && s.PermissionsToken.IsEmpty() &&
		s.SecurityAttributes == 0 && s.PluginSecurityAttributes == 0
}

// Clone 深拷贝
func (s SecurityData) Clone() SecurityData {
	s.IdentityToken = s.IdentityToken.Clone()
	s.PermissionsToken = s.PermissionsToken.Clone()
	return s
}

// ============================================================================
//                              Info - 记录快照
// ============================================================================

// Info ProxyData 的字段快照
//
// Info 是普通值，不含锁；ProxyData.Info 返回深拷贝，可自由修改。
type Info struct {
	ProtocolVersion     types.ProtocolVersion
	VendorID            types.VendorID
	GUID                types.GUID
	ExpectsInlineQos    bool
	BuiltinEndpoints    types.BuiltinEndpointSet
	MetatrafficLocators locator.Set
	DefaultLocators     locator.Set
	Name                string
	Key                 types.InstanceHandle
	LeaseDuration       types.Duration
	LeaseDurationMicros int64
	UserData            []byte
	Properties          []types.PropertyPair
	Security            SecurityData

	// Version 发现缓存用于判断记录新旧，不上线
	Version types.SequenceNumber
}

// clone 深拷贝
func (i *Info) clone() Info {
	c := *i
	c.MetatrafficLocators = i.MetatrafficLocators.Clone()
	c.DefaultLocators = i.DefaultLocators.Clone()
	c.UserData = slices.Clone(i.UserData)
	c.Properties = slices.Clone(i.Properties)
	c.Security = i.Security.Clone()
	return c
}

// ============================================================================
//                              ProxyData
// ============================================================================

// ProxyData 已发现参与者的代理数据记录
type ProxyData struct {
	mu   sync.Mutex
	info Info
}

// New 创建空记录，locator 集合容量取自分配配置
func New(alloc config.AllocationConfig) *ProxyData {
	pd := &ProxyData{}
	pd.info.MetatrafficLocators = locator.NewSet(alloc.MaxUnicastLocators, alloc.MaxMulticastLocators)
	pd.info.DefaultLocators = locator.NewSet(alloc.MaxUnicastLocators, alloc.MaxMulticastLocators)
	pd.clearLocked()
	return pd
}

// NewLocal 按配置创建本地参与者的公告记录
func NewLocal(cfg *config.Config, guid types.GUID, name string) *ProxyData {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	pd := New(cfg.Allocation)
	pd.info.VendorID = types.VendorIDLocal
	pd.setGUIDLocked(guid)
	pd.info.Name = name
	pd.info.ExpectsInlineQos = cfg.Discovery.ExpectsInlineQos
	pd.info.BuiltinEndpoints = types.BuiltinEndpointSet(cfg.Discovery.BuiltinEndpoints)
	pd.setLeaseDurationLocked(types.DurationFromStd(cfg.Discovery.LeaseDuration.Duration()))
	return pd
}

// Clone 返回内容相同、锁独立的新记录
func (pd *ProxyData) Clone() *ProxyData {
	return &ProxyData{info: pd.Info()}
}

// Info 返回字段快照
func (pd *ProxyData) Info() Info {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.clone()
}

// String 返回简短描述
func (pd *ProxyData) String() string {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if pd.info.Name == "" {
		return pd.info.GUID.String()
	}
	return pd.info.Name + "(" + pd.info.GUID.String() + ")"
}

// ============================================================================
//                              身份字段
// ============================================================================

// GUID 返回参与者 GUID
func (pd *ProxyData) GUID() types.GUID {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.GUID
}

// Key 返回实例键
func (pd *ProxyData) Key() types.InstanceHandle {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.Key
}

// SetGUID 设置 GUID，实例键随之更新
func (pd *ProxyData) SetGUID(guid types.GUID) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.setGUIDLocked(guid)
}

func (pd *ProxyData) setGUIDLocked(guid types.GUID) {
	pd.info.GUID = guid
	pd.info.Key = guid.InstanceHandle()
}

// ProtocolVersion 返回协议版本
func (pd *ProxyData) ProtocolVersion() types.ProtocolVersion {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.ProtocolVersion
}

// SetProtocolVersion 设置协议版本
func (pd *ProxyData) SetProtocolVersion(v types.ProtocolVersion) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.ProtocolVersion = v
}

// VendorID 返回厂商 ID
func (pd *ProxyData) VendorID() types.VendorID {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.VendorID
}

// SetVendorID 设置厂商 ID
func (pd *ProxyData) SetVendorID(v types.VendorID) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.VendorID = v
}

// Name 返回参与者名称，空串表示未设置
func (pd *ProxyData) Name() string {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.Name
}

// SetName 设置参与者名称
func (pd *ProxyData) SetName(name string) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.Name = name
}

// ============================================================================
//                              能力与租约
// ============================================================================

// ExpectsInlineQos 返回是否期望内联 QoS
func (pd *ProxyData) ExpectsInlineQos() bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.ExpectsInlineQos
}

// SetExpectsInlineQos 设置是否期望内联 QoS
func (pd *ProxyData) SetExpectsInlineQos(v bool) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.ExpectsInlineQos = v
}

// BuiltinEndpoints 返回内置端点位掩码
func (pd *ProxyData) BuiltinEndpoints() types.BuiltinEndpointSet {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.BuiltinEndpoints
}

// SetBuiltinEndpoints 设置内置端点位掩码
func (pd *ProxyData) SetBuiltinEndpoints(s types.BuiltinEndpointSet) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.BuiltinEndpoints = s
}

// LeaseDuration 返回租约时长
func (pd *ProxyData) LeaseDuration() types.Duration {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.LeaseDuration
}

// LeaseDurationMicros 返回租约时长的微秒形式
func (pd *ProxyData) LeaseDurationMicros() int64 {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.LeaseDurationMicros
}

// SetLeaseDuration 设置租约时长并同步微秒缓存
//
// 纳秒部分超过一秒时先进位，保证缓存与线上编码一致。
func (pd *ProxyData) SetLeaseDuration(d types.Duration) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.setLeaseDurationLocked(d)
}

func (pd *ProxyData) setLeaseDurationLocked(d types.Duration) {
	d = d.Normalize()
	pd.info.LeaseDuration = d
	pd.info.LeaseDurationMicros = d.Micros()
}

// Version 返回记录版本
func (pd *ProxyData) Version() types.SequenceNumber {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.Version
}

// SetVersion 设置记录版本
func (pd *ProxyData) SetVersion(v types.SequenceNumber) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.Version = v
}

// ============================================================================
//                              Locator
// ============================================================================

// MetatrafficLocators 返回元流量 locator 集合副本
func (pd *ProxyData) MetatrafficLocators() locator.Set {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.MetatrafficLocators.Clone()
}

// DefaultLocators 返回用户流量 locator 集合副本
func (pd *ProxyData) DefaultLocators() locator.Set {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.DefaultLocators.Clone()
}

// AddMetatrafficUnicastLocator 追加元流量单播地址，已满时返回 false
func (pd *ProxyData) AddMetatrafficUnicastLocator(l types.Locator) bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.MetatrafficLocators.AddUnicast(l)
}

// AddMetatrafficMulticastLocator 追加元流量组播地址，已满时返回 false
func (pd *ProxyData) AddMetatrafficMulticastLocator(l types.Locator) bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.MetatrafficLocators.AddMulticast(l)
}

// AddDefaultUnicastLocator 追加用户流量单播地址，已满时返回 false
func (pd *ProxyData) AddDefaultUnicastLocator(l types.Locator) bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.DefaultLocators.AddUnicast(l)
}

// AddDefaultMulticastLocator 追加用户流量组播地址，已满时返回 false
func (pd *ProxyData) AddDefaultMulticastLocator(l types.Locator) bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.DefaultLocators.AddMulticast(l)
}

// ============================================================================
//                              用户数据与属性
// ============================================================================

// UserData 返回用户数据副本
func (pd *ProxyData) UserData() []byte {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return slices.Clone(pd.info.UserData)
}

// SetUserData 设置用户数据
func (pd *ProxyData) SetUserData(data []byte) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.UserData = slices.Clone(data)
}

// Properties 返回属性列表副本
func (pd *ProxyData) Properties() []types.PropertyPair {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return slices.Clone(pd.info.Properties)
}

// SetProperties 设置属性列表
func (pd *ProxyData) SetProperties(props []types.PropertyPair) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.Properties = slices.Clone(props)
}

// Security 返回安全信息副本
func (pd *ProxyData) Security() SecurityData {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.info.Security.Clone()
}

// SetSecurity 设置安全信息
func (pd *ProxyData) SetSecurity(s SecurityData) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.info.Security = s.Clone()
}
