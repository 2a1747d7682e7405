package cdr

import (
	"encoding/binary"
	"fmt"
)

// Endianness 字节序
type Endianness uint8

const (
	// BigEndian 大端
	BigEndian Endianness = iota
	// LittleEndian 小端
	LittleEndian
)

// DefaultEndianness 新建消息的默认字节序
const DefaultEndianness = LittleEndian

// DefaultMessageSize 单个参与者公告的默认缓冲区大小
const DefaultMessageSize = 65500

// String 返回字节序名
func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

func (e Endianness) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Message CDR 消息缓冲区
//
// 写入从 Len() 处追加，读取从 Pos() 处前进。
type Message struct {
	buf    []byte
	length int
	pos    int
	endian Endianness
}

// NewMessage 创建容量为 size 的空消息
func NewMessage(size int) *Message {
	return &Message{
		buf:    make([]byte, size),
		endian: DefaultEndianness,
	}
}

// NewMessageFromBytes 创建用于读取的消息，数据被完整拷贝
func NewMessageFromBytes(b []byte) *Message {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Message{
		buf:    buf,
		length: len(b),
		endian: DefaultEndianness,
	}
}

// Bytes 返回已写入的数据
func (m *Message) Bytes() []byte {
	return m.buf[:m.length]
}

// Len 返回已写入的字节数
func (m *Message) Len() int { return m.length }

// Cap 返回缓冲区容量
func (m *Message) Cap() int { return len(m.buf) }

// Pos 返回读取位置
func (m *Message) Pos() int { return m.pos }

// Free 返回剩余可写字节数
func (m *Message) Free() int { return len(m.buf) - m.length }

// Remaining 返回剩余可读字节数
func (m *Message) Remaining() int { return m.length - m.pos }

// Endianness 返回当前字节序
func (m *Message) Endianness() Endianness { return m.endian }

// SetEndianness 设置字节序
func (m *Message) SetEndianness(e Endianness) { m.endian = e }

// Reset 清空数据并复位读取位置
func (m *Message) Reset() {
	m.length = 0
	m.pos = 0
	m.endian = DefaultEndianness
}

// Rewind 复位读取位置
func (m *Message) Rewind() { m.pos = 0 }

// ============================================================================
//                              写入
// ============================================================================

// Reserve 检查是否还能写入 n 字节
func (m *Message) Reserve(n int) error {
	if n < 0 || n > m.Free() {
		return fmt.Errorf("%w: need %d bytes, %d free", ErrBufferFull, n, m.Free())
	}
	return nil
}

func (m *Message) grow(n int) ([]byte, error) {
	if err := m.Reserve(n); err != nil {
		return nil, err
	}
	b := m.buf[m.length : m.length+n]
	m.length += n
	return b, nil
}

// AddOctet 写入单字节
func (m *Message) AddOctet(v byte) error {
	b, err := m.grow(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// AddOctets 写入字节序列
func (m *Message) AddOctets(v []byte) error {
	b, err := m.grow(len(v))
	if err != nil {
		return err
	}
	copy(b, v)
	return nil
}

// AddUint16 写入 uint16
func (m *Message) AddUint16(v uint16) error {
	b, err := m.grow(2)
	if err != nil {
		return err
	}
	m.endian.order().PutUint16(b, v)
	return nil
}

// AddUint32 写入 uint32
func (m *Message) AddUint32(v uint32) error {
	b, err := m.grow(4)
	if err != nil {
		return err
	}
	m.endian.order().PutUint32(b, v)
	return nil
}

// AddInt32 写入 int32
func (m *Message) AddInt32(v int32) error {
	return m.AddUint32(uint32(v))
}

// AddPadding 写入 n 个零字节
func (m *Message) AddPadding(n int) error {
	b, err := m.grow(n)
	if err != nil {
		return err
	}
	clear(b)
	return nil
}

// AddString 写入 CDR 字符串（长度含结尾 NUL，按 4 字节补齐）
func (m *Message) AddString(s string) error {
	if err := m.Reserve(StringSize(s)); err != nil {
		return err
	}
	_ = m.AddUint32(uint32(len(s) + 1))
	_ = m.AddOctets([]byte(s))
	return m.AddPadding(1 + Pad(len(s)+1))
}

// AddSequence 写入 CDR 字节序列（长度 + 数据，按 4 字节补齐）
func (m *Message) AddSequence(v []byte) error {
	if err := m.Reserve(SequenceSize(v)); err != nil {
		return err
	}
	_ = m.AddUint32(uint32(len(v)))
	_ = m.AddOctets(v)
	return m.AddPadding(Pad(len(v)))
}

// ============================================================================
//                              读取
// ============================================================================

func (m *Message) take(n int) ([]byte, error) {
	if n < 0 || n > m.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes, %d left", ErrBufferUnderflow, n, m.Remaining())
	}
	b := m.buf[m.pos : m.pos+n]
	m.pos += n
	return b, nil
}

// Skip 跳过 n 字节
func (m *Message) Skip(n int) error {
	_, err := m.take(n)
	return err
}

// ReadOctet 读取单字节
func (m *Message) ReadOctet() (byte, error) {
	b, err := m.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadOctets 读取 n 字节（返回副本）
func (m *Message) ReadOctets(n int) ([]byte, error) {
	b, err := m.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadUint16 读取 uint16
func (m *Message) ReadUint16() (uint16, error) {
	b, err := m.take(2)
	if err != nil {
		return 0, err
	}
	return m.endian.order().Uint16(b), nil
}

// ReadUint32 读取 uint32
func (m *Message) ReadUint32() (uint32, error) {
	b, err := m.take(4)
	if err != nil {
		return 0, err
	}
	return m.endian.order().Uint32(b), nil
}

// ReadInt32 读取 int32
func (m *Message) ReadInt32() (int32, error) {
	v, err := m.ReadUint32()
	return int32(v), err
}

// ReadString 读取 CDR 字符串
//
// 长度为 0 视为空串；结尾 NUL 被去掉，补齐字节被跳过。
func (m *Message) ReadString() (string, error) {
	n, err := m.ReadUint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if int64(n) > int64(m.Remaining()) {
		return "", fmt.Errorf("%w: string length %d, %d left", ErrBufferUnderflow, n, m.Remaining())
	}
	b, _ := m.take(int(n))
	if b[n-1] == 0 {
		b = b[:n-1]
	}
	s := string(b)
	if pad := Pad(int(n)); pad > 0 {
		if err := m.Skip(min(pad, m.Remaining())); err != nil {
			return "", err
		}
	}
	return s, nil
}

// ReadSequence 读取 CDR 字节序列
func (m *Message) ReadSequence() ([]byte, error) {
	n, err := m.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(m.Remaining()) {
		return nil, fmt.Errorf("%w: sequence length %d, %d left", ErrBufferUnderflow, n, m.Remaining())
	}
	out, _ := m.ReadOctets(int(n))
	if pad := Pad(int(n)); pad > 0 {
		if err := m.Skip(min(pad, m.Remaining())); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ============================================================================
//                              尺寸计算
// ============================================================================

// Pad 返回把 n 补齐到 4 的倍数所需字节数
func Pad(n int) int {
	return (4 - n%4) % 4
}

// StringSize 返回 CDR 字符串的线上长度
func StringSize(s string) int {
	n := 4 + len(s) + 1
	return n + Pad(n)
}

// SequenceSize 返回 CDR 字节序列的线上长度
func SequenceSize(v []byte) int {
	n := 4 + len(v)
	return n + Pad(n)
}
