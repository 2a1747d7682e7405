// Package types 定义 RTPS 发现层使用的基础值类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              标识相关错误
// ============================================================================

var (
	// ErrInvalidGUID 无效的 GUID 文本
	ErrInvalidGUID = errors.New("invalid GUID")

	// ErrInvalidGuidPrefix 无效的 GUID 前缀
	ErrInvalidGuidPrefix = errors.New("invalid GUID prefix")
)

// ============================================================================
//                              地址相关错误
// ============================================================================

var (
	// ErrInvalidLocator 无效的 Locator 文本
	ErrInvalidLocator = errors.New("invalid locator")

	// ErrUnknownLocatorKind 未知的 Locator 类型
	ErrUnknownLocatorKind = errors.New("unknown locator kind")
)
