package participant

import "errors"

var (
	// ErrUnsupportedProtocolVersion 对端主版本低于本地实现
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")

	// ErrEncode 写出参数列表失败（缓冲区不足）
	ErrEncode = errors.New("encode participant proxy data")

	// ErrDecode 解析参数列表失败
	ErrDecode = errors.New("decode participant proxy data")
)
