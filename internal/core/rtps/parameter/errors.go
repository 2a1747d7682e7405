package parameter

import "errors"

var (
	// ErrTruncated 数据在参数列表结束前耗尽
	ErrTruncated = errors.New("parameter list truncated")

	// ErrInvalidLength 参数长度字段非法
	ErrInvalidLength = errors.New("invalid parameter length")

	// ErrInvalidParameter 参数内容与其 id 的类型不符
	ErrInvalidParameter = errors.New("invalid parameter payload")

	// ErrBadEncapsulation 封装头不是 PL_CDR_BE / PL_CDR_LE
	ErrBadEncapsulation = errors.New("unsupported encapsulation")

	// ErrParameterTooLarge 参数内容超过 u16 长度上限
	ErrParameterTooLarge = errors.New("parameter too large")

	// ErrBufferFull 缓冲区容量不足以写入参数
	ErrBufferFull = errors.New("buffer too small for parameter")
)
