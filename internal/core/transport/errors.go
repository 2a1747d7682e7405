package transport

import "errors"

var (
	// ErrNoTransport 没有启用任何传输
	ErrNoTransport = errors.New("no transport enabled")

	// ErrInvalidCacheSize 缓存容量无效
	ErrInvalidCacheSize = errors.New("invalid transform cache size")
)
