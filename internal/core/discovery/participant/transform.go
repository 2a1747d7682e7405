package participant

import "github.com/cherho0/Fast-DDS/pkg/types"

// LocatorTransformer 将对端公告的 locator 转换为本地可用形式
//
// 返回 false 表示拒绝该 locator。transport.NetworkFactory 实现了此接口。
type LocatorTransformer interface {
	TransformRemoteLocator(remote types.Locator) (types.Locator, bool)
}

// LocatorTransformFunc 函数适配器
type LocatorTransformFunc func(remote types.Locator) (types.Locator, bool)

// TransformRemoteLocator 实现 LocatorTransformer
func (f LocatorTransformFunc) TransformRemoteLocator(remote types.Locator) (types.Locator, bool) {
	return f(remote)
}

// AcceptAllLocators 原样接受所有 locator
var AcceptAllLocators LocatorTransformer = LocatorTransformFunc(func(remote types.Locator) (types.Locator, bool) {
	return remote, true
})
