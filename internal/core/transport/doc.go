// Package transport 提供发现层使用的网络工厂
//
// 发现层不直接收发数据，只需要判断对端公告的 locator 是否可用：
//
//   - 传输类型未启用的 locator 被拒绝
//   - 指向本机接口地址的 locator 被改写为回环地址
//   - 其余 locator 原样接受
//
// NetworkFactory 的转换结果按 locator 缓存（LRU），避免重复扫描本机地址表。
//
// 使用示例：
//
//	nf, err := transport.NewNetworkFactory(transport.NewConfig(), nil)
//	local, ok := nf.TransformRemoteLocator(remote)
package transport
