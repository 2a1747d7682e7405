package pool

import "errors"

var (
	// ErrClosed 对象池已关闭
	ErrClosed = errors.New("proxy pool closed")

	// ErrUnknownKey 键为未知 GUID 前缀
	ErrUnknownKey = errors.New("unknown guid prefix")

	// ErrReleased 句柄已释放
	ErrReleased = errors.New("handle already released")

	// ErrOutstandingReferences 关闭时仍有未释放的引用
	ErrOutstandingReferences = errors.New("outstanding proxy references")
)
