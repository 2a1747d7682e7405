// Package types 定义 RTPS 发现层使用的基础值类型
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 职能
//
// pkg/types 定义 **Go 内部数据结构**，wire format 由
// internal/core/rtps/parameter 负责编解码。
//
// # 文件组织
//
// 标识类型:
//   - guid.go      - GuidPrefix, EntityID, GUID, InstanceHandle
//   - protocol.go  - ProtocolVersion, VendorID, 内置端点位掩码
//
// 值类型:
//   - time.go      - Duration（RTPS Duration_t / Time_t）
//   - locator.go   - Locator 网络地址
//   - sequence.go  - SequenceNumber
//   - token.go     - Token, Property, BinaryProperty（安全令牌）
//   - errors.go    - 公共错误定义
package types
