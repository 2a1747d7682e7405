// Package security 提供安全扩展的构建开关与属性位定义
//
// 安全支持在编译期决定：默认构建启用，使用 nosecurity 构建标签可关闭：
//
//	go build -tags nosecurity ./...
//
// 关闭时代理数据记录不会写出也不会保存身份令牌、权限令牌和安全属性，
// 但仍能识别并丢弃收到的对应参数。
package security
