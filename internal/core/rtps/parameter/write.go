package parameter

import (
	"fmt"
	"math"

	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
)

// HeaderLength 参数头（id + length）长度
const HeaderLength = 4

// Size 返回参数写出后的总长度（含参数头）
func Size(p Parameter) int {
	return HeaderLength + p.size()
}

// Write 写入单个参数
//
// 先检查容量再写入，失败时消息中不会留下该参数的任何字节。
func Write(m *cdr.Message, p Parameter) error {
	n := p.size()
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: %s payload is %d bytes", ErrParameterTooLarge, p.ID(), n)
	}
	if err := m.Reserve(HeaderLength + n); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBufferFull, p.ID(), err)
	}
	_ = m.AddUint16(uint16(p.ID()))
	_ = m.AddUint16(uint16(n))
	p.write(m)
	return nil
}

// WriteSentinel 写入列表结束标记
func WriteSentinel(m *cdr.Message) error {
	if err := m.Reserve(HeaderLength); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBufferFull, PIDSentinel, err)
	}
	_ = m.AddUint16(uint16(PIDSentinel))
	_ = m.AddUint16(0)
	return nil
}
