package cdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMessage_Endianness 测试两种字节序的写入布局
func TestMessage_Endianness(t *testing.T) {
	le := NewMessage(16)
	require.NoError(t, le.AddUint16(0x0015))
	require.NoError(t, le.AddUint32(0x01020304))
	assert.Equal(t, []byte{0x15, 0x00, 0x04, 0x03, 0x02, 0x01}, le.Bytes())

	be := NewMessage(16)
	be.SetEndianness(BigEndian)
	require.NoError(t, be.AddUint16(0x0015))
	require.NoError(t, be.AddUint32(0x01020304))
	assert.Equal(t, []byte{0x00, 0x15, 0x01, 0x02, 0x03, 0x04}, be.Bytes())
}

// TestMessage_BufferFull 测试写满时不截断
func TestMessage_BufferFull(t *testing.T) {
	msg := NewMessage(6)
	require.NoError(t, msg.AddUint32(1))

	err := msg.AddUint32(2)
	assert.ErrorIs(t, err, ErrBufferFull)
	assert.Equal(t, 4, msg.Len())

	err = msg.AddString("abc")
	assert.ErrorIs(t, err, ErrBufferFull)
	assert.Equal(t, 4, msg.Len(), "failed string write must not leave partial data")
}

// TestMessage_String 测试 CDR 字符串编解码
func TestMessage_String(t *testing.T) {
	tests := []string{"", "a", "abc", "alice", "participant-name"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			msg := NewMessage(64)
			require.NoError(t, msg.AddString(s))
			assert.Equal(t, StringSize(s), msg.Len())
			assert.Zero(t, msg.Len()%4)

			in := NewMessageFromBytes(msg.Bytes())
			got, err := in.ReadString()
			require.NoError(t, err)
			assert.Equal(t, s, got)
			assert.Zero(t, in.Remaining())
		})
	}
}

// TestMessage_Sequence 测试字节序列编解码
func TestMessage_Sequence(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	msg := NewMessage(32)
	require.NoError(t, msg.AddSequence(data))
	assert.Equal(t, 12, msg.Len())

	in := NewMessageFromBytes(msg.Bytes())
	got, err := in.ReadSequence()
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

// TestMessage_Underflow 测试越界读取返回错误而不是 panic
func TestMessage_Underflow(t *testing.T) {
	in := NewMessageFromBytes([]byte{0x01, 0x02})

	_, err := in.ReadUint32()
	assert.ErrorIs(t, err, ErrBufferUnderflow)

	huge := NewMessageFromBytes([]byte{0xff, 0xff, 0xff, 0x7f, 'a'})
	_, err = huge.ReadString()
	assert.ErrorIs(t, err, ErrBufferUnderflow)

	huge.Rewind()
	_, err = huge.ReadSequence()
	assert.ErrorIs(t, err, ErrBufferUnderflow)
}

// TestPad 测试补齐计算
func TestPad(t *testing.T) {
	assert.Equal(t, 0, Pad(0))
	assert.Equal(t, 3, Pad(1))
	assert.Equal(t, 2, Pad(2))
	assert.Equal(t, 1, Pad(3))
	assert.Equal(t, 0, Pad(4))
}
