package cdr

import "errors"

var (
	// ErrBufferFull 写入超出缓冲区容量
	ErrBufferFull = errors.New("cdr: buffer full")

	// ErrBufferUnderflow 读取超出有效数据
	ErrBufferUnderflow = errors.New("cdr: buffer underflow")
)
