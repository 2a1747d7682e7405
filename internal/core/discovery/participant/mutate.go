package participant

import (
	"slices"

	"github.com/cherho0/Fast-DDS/internal/core/rtps/locator"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// Clear 将记录重置为默认状态，保留 locator 容量上限
func (pd *ProxyData) Clear() {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.clearLocked()
}

func (pd *ProxyData) clearLocked() {
	if !pd.info.GUID.IsUnknown() {
		logger.Debug("清空代理数据", "guid", pd.info.GUID)
	}

	meta := pd.info.MetatrafficLocators
	def := pd.info.DefaultLocators
	meta.Clear()
	def.Clear()

	pd.info = Info{
		ProtocolVersion:     types.LocalProtocolVersion,
		VendorID:            types.VendorIDUnknown,
		MetatrafficLocators: meta,
		DefaultLocators:     def,
	}
}

// Copy 用 other 的全部字段覆盖当前记录（含身份字段与版本）
func (pd *ProxyData) Copy(other *ProxyData) {
	if other == pd {
		return
	}
	src := other.Info()

	pd.mu.Lock()
	defer pd.mu.Unlock()

	meta := pd.info.MetatrafficLocators
	def := pd.info.DefaultLocators
	pd.assignLocatorsLocked(&meta, &def, &src)

	src.MetatrafficLocators = meta
	src.DefaultLocators = def
	pd.info = src
}

// Update 用较新的公告刷新已知参与者
//
// 只更新 locator、属性、租约、用户数据与安全信息；GUID、协议版本、厂商 ID、
// 名称保持不变。
func (pd *ProxyData) Update(other *ProxyData) {
	if other == pd {
		return
	}
	src := other.Info()

	pd.mu.Lock()
	defer pd.mu.Unlock()

	pd.assignLocatorsLocked(&pd.info.MetatrafficLocators, &pd.info.DefaultLocators, &src)
	pd.info.Properties = src.Properties
	pd.setLeaseDurationLocked(src.LeaseDuration)
	pd.info.UserData = src.UserData
	pd.info.Security = src.Security
}

// assignLocatorsLocked 按自身容量上限复制 locator，超出部分丢弃并告警
func (pd *ProxyData) assignLocatorsLocked(meta, def *locator.Set, src *Info) {
	dropped := meta.Assign(&src.MetatrafficLocators) + def.Assign(&src.DefaultLocators)
	if dropped > 0 {
		logger.Warn("locator 超出容量被丢弃", "guid", src.GUID, "dropped", dropped)
	}
}

// ============================================================================
//                              持久化 GUID
// ============================================================================

// SetPersistenceGUID 将持久化 GUID 写入属性列表
//
// 未知 GUID 被忽略；已存在同名属性时替换第一个，否则追加。
func (pd *ProxyData) SetPersistenceGUID(guid types.GUID) {
	if guid.IsUnknown() {
		return
	}
	prop := types.PropertyPair{Name: PersistenceGUIDProperty, Value: guid.String()}

	pd.mu.Lock()
	defer pd.mu.Unlock()

	i := slices.IndexFunc(pd.info.Properties, func(p types.PropertyPair) bool {
		return p.Name == PersistenceGUIDProperty
	})
	if i >= 0 {
		pd.info.Properties[i] = prop
		return
	}
	pd.info.Properties = append(pd.info.Properties, prop)
}

// PersistenceGUID 从属性列表读取持久化 GUID
//
// 不存在或无法解析时返回 types.UnknownGUID。
func (pd *ProxyData) PersistenceGUID() types.GUID {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	for _, p := range pd.info.Properties {
		if p.Name != PersistenceGUIDProperty {
			continue
		}
		guid, err := types.ParseGUID(p.Value)
		if err != nil {
			logger.Debug("持久化 GUID 属性无法解析", "value", p.Value, "error", err)
			return types.UnknownGUID
		}
		return guid
	}
	return types.UnknownGUID
}
