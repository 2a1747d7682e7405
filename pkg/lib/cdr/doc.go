// Package cdr 实现 CDR 消息缓冲区
//
// Message 是发现数据编解码使用的字节缓冲区：
//
//   - 写入端容量在创建时固定，空间不足时返回 ErrBufferFull，不会截断输出
//   - 读取端对越界读取返回 ErrBufferUnderflow，不会 panic
//   - 字节序可切换，参数列表的封装头会设置它
//
// # 使用示例
//
//	msg := cdr.NewMessage(cdr.DefaultMessageSize)
//	_ = msg.AddUint16(0x0015)
//
//	in := cdr.NewMessageFromBytes(msg.Bytes())
//	pid, err := in.ReadUint16()
//
// Message 不是并发安全的，由调用方保证独占使用。
package cdr
