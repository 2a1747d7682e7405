package participant

import (
	"fmt"

	"github.com/cherho0/Fast-DDS/internal/core/rtps/parameter"
	"github.com/cherho0/Fast-DDS/internal/core/security"
	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// ============================================================================
//                              序列化
// ============================================================================

// WriteToCDRMessage 将记录写为参数列表
//
// 顺序固定：协议版本、厂商 ID、内联 QoS（仅为 true 时）、GUID、元流量组播/单播、
// 用户流量单播/组播、租约、内置端点、名称、用户数据、属性列表、安全参数，最后是哨兵。
// 失败仅可能来自缓冲区容量不足。
func (pd *ProxyData) WriteToCDRMessage(msg *cdr.Message, writeEncapsulation bool) error {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	if err := pd.writeLocked(msg, writeEncapsulation); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func (pd *ProxyData) writeLocked(msg *cdr.Message, writeEncapsulation bool) error {
	if writeEncapsulation {
		if err := parameter.WriteEncapsulation(msg); err != nil {
			return err
		}
	}

	info := &pd.info
	params := make([]parameter.Parameter, 0, 16)
	params = append(params,
		parameter.ProtocolVersion{Version: info.ProtocolVersion},
		parameter.VendorID{Vendor: info.VendorID},
	)
	if info.ExpectsInlineQos {
		params = append(params, parameter.Bool{PID: parameter.PIDExpectsInlineQos, Value: true})
	}
	params = append(params, parameter.GUID{PID: parameter.PIDParticipantGUID, GUID: info.GUID})
	params = appendLocators(params, parameter.PIDMetatrafficMulticastLocator, info.MetatrafficLocators.Multicast())
	params = appendLocators(params, parameter.PIDMetatrafficUnicastLocator, info.MetatrafficLocators.Unicast())
	params = appendLocators(params, parameter.PIDDefaultUnicastLocator, info.DefaultLocators.Unicast())
	params = appendLocators(params, parameter.PIDDefaultMulticastLocator, info.DefaultLocators.Multicast())
	params = append(params,
		parameter.Time{PID: parameter.PIDParticipantLeaseDuration, Duration: info.LeaseDuration},
		parameter.BuiltinEndpointSet{Endpoints: info.BuiltinEndpoints},
	)
	if info.Name != "" {
		params = append(params, parameter.String{PID: parameter.PIDEntityName, Value: info.Name})
	}
	if len(info.UserData) > 0 {
		params = append(params, parameter.UserData{Data: info.UserData})
	}
	if len(info.Properties) > 0 {
		params = append(params, parameter.PropertyList{Properties: info.Properties})
	}
	if security.Enabled {
		params = appendSecurity(params, &info.Security)
	}

	for _, p := range params {
		if err := parameter.Write(msg, p); err != nil {
			return err
		}
	}
	return parameter.WriteSentinel(msg)
}

func appendLocators(params []parameter.Parameter, id parameter.ID, locs []types.Locator) []parameter.Parameter {
	for _, l := range locs {
		params = append(params, parameter.Locator{PID: id, Locator: l})
	}
	return params
}

func appendSecurity(params []parameter.Parameter, s *SecurityData) []parameter.Parameter {
	if !s.IdentityToken.IsEmpty() {
		params = append(params, parameter.Token{PID: parameter.PIDIdentityToken, Token: s.IdentityToken})
	}
	if !s.PermissionsToken.IsEmpty() {
		params = append(params, parameter.Token{PID: parameter.PIDPermissionsToken, Token: s.PermissionsToken})
	}
	if s.SecurityAttributes != 0 || s.PluginSecurityAttributes != 0 {
		params = append(params, parameter.ParticipantSecurityInfo{
			SecurityAttributes:       uint32(s.SecurityAttributes),
			PluginSecurityAttributes: uint32(s.PluginSecurityAttributes),
		})
	}
	return params
}

// ============================================================================
//                              反序列化
// ============================================================================

// ReadFromCDRMessage 从参数列表恢复记录
//
// 解码前先清空记录；任何失败（帧格式错误、协议版本过低、参数内容与 PID 不符）
// 都使记录保持清空状态。transform 为 nil 时接受所有 locator。
func (pd *ProxyData) ReadFromCDRMessage(msg *cdr.Message, useEncapsulation bool, transform LocatorTransformer) error {
	if transform == nil {
		transform = AcceptAllLocators
	}

	pd.mu.Lock()
	defer pd.mu.Unlock()

	pd.clearLocked()
	_, err := parameter.ReadList(msg, useEncapsulation, func(p parameter.Parameter) error {
		return pd.applyLocked(p, transform)
	})
	if err != nil {
		pd.clearLocked()
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// applyLocked 将单个参数应用到记录
func (pd *ProxyData) applyLocked(p parameter.Parameter, transform LocatorTransformer) error {
	info := &pd.info

	switch v := p.(type) {
	case parameter.KeyHash:
		info.GUID = v.Key.GUID()
		info.Key = v.Key
	case parameter.ProtocolVersion:
		if v.Version.Major < types.LocalProtocolVersion.Major {
			return fmt.Errorf("%w: %d.%d", ErrUnsupportedProtocolVersion, v.Version.Major, v.Version.Minor)
		}
		info.ProtocolVersion = v.Version
	case parameter.VendorID:
		info.VendorID = v.Vendor
	case parameter.Bool:
		if v.PID == parameter.PIDExpectsInlineQos {
			info.ExpectsInlineQos = v.Value
		}
	case parameter.GUID:
		if v.PID == parameter.PIDParticipantGUID {
			pd.setGUIDLocked(v.GUID)
		}
	case parameter.Locator:
		pd.applyLocatorLocked(v, transform)
	case parameter.Time:
		if v.PID == parameter.PIDParticipantLeaseDuration {
			pd.setLeaseDurationLocked(v.Duration)
		}
	case parameter.BuiltinEndpointSet:
		info.BuiltinEndpoints = v.Endpoints
	case parameter.String:
		if v.PID == parameter.PIDEntityName {
			info.Name = v.Value
		}
	case parameter.PropertyList:
		info.Properties = v.Properties
	case parameter.UserData:
		info.UserData = v.Data
	case parameter.Token, parameter.ParticipantSecurityInfo:
		pd.applySecurityLocked(p)
	case parameter.Unknown:
		// 前向兼容：未识别参数直接跳过
	}
	return nil
}

func (pd *ProxyData) applyLocatorLocked(v parameter.Locator, transform LocatorTransformer) {
	l, ok := transform.TransformRemoteLocator(v.Locator)
	if !ok {
		return
	}

	var added bool
	switch v.PID {
	case parameter.PIDMetatrafficUnicastLocator:
		added = pd.info.MetatrafficLocators.AddUnicast(l)
	case parameter.PIDMetatrafficMulticastLocator:
		added = pd.info.MetatrafficLocators.AddMulticast(l)
	case parameter.PIDDefaultUnicastLocator:
		added = pd.info.DefaultLocators.AddUnicast(l)
	case parameter.PIDDefaultMulticastLocator:
		added = pd.info.DefaultLocators.AddMulticast(l)
	}
	if !added {
		logger.Warn("locator 超出容量被丢弃", "pid", v.PID, "locator", l)
	}
}

func (pd *ProxyData) applySecurityLocked(p parameter.Parameter) {
	if !security.Enabled {
		logger.Warn("安全功能未启用，忽略安全参数", "pid", p.ID(), "guid", pd.info.GUID)
		return
	}

	switch v := p.(type) {
	case parameter.Token:
		if v.PID == parameter.PIDIdentityToken {
			pd.info.Security.IdentityToken = v.Token
		} else {
			pd.info.Security.PermissionsToken = v.Token
		}
	case parameter.ParticipantSecurityInfo:
		pd.info.Security.SecurityAttributes = security.ParticipantAttributes(v.SecurityAttributes)
		pd.info.Security.PluginSecurityAttributes = security.PluginAttributes(v.PluginSecurityAttributes)
	}
}
