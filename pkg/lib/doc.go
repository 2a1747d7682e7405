// Package lib 包含基础设施工具库
//
// 本目录包含与架构组件无关的通用工具库：
//
//   - cdr: CDR 消息缓冲区（定长、可选字节序）
//   - log: 日志封装
//
// # 与 pkg/ 其他目录的关系
//
// pkg/ 目录包含两类内容：
//
//   - types/: 公共类型定义
//   - lib/: 基础设施工具库（本目录）
//
// # 使用示例
//
//	import (
//	    "github.com/cherho0/Fast-DDS/pkg/lib/cdr"
//	    "github.com/cherho0/Fast-DDS/pkg/lib/log"
//	)
package lib
