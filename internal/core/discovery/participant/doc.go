// Package participant 实现已发现参与者的代理数据记录
//
// ProxyData 汇总一个远端（或本地）参与者在 SPDP 公告中携带的全部元数据：
// 协议版本、厂商 ID、GUID、元流量与用户流量 locator、租约时长、内置端点位掩码、
// 名称、用户数据、属性列表以及安全令牌。
//
// # 编解码
//
//   - WriteToCDRMessage 按固定顺序写出参数列表，以 PID_SENTINEL 结尾
//   - ReadFromCDRMessage 先清空记录再逐个应用参数；任何失败都使记录保持清空状态
//
// 远端 locator 经 LocatorTransformer 转换，被拒绝的 locator 单独丢弃，不影响整体解码。
//
// # 并发
//
// 每条记录持有一把互斥锁，所有公开方法在调用期间持锁；内部辅助函数以 Locked
// 结尾，假定调用方已持锁，不会重复加锁。
//
// # 安全字段
//
// 安全字段是否参与编解码由构建标签决定（见 internal/core/security）。关闭安全支持时，
// 三种安全参数仍被接受，记录警告后丢弃。
package participant
