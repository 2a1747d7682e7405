//go:build !nosecurity

package security

// Enabled 当前构建是否包含安全支持
const Enabled = true
