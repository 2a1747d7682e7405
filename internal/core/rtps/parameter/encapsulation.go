package parameter

import (
	"fmt"

	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
)

// 参数列表的封装标识
const (
	EncapsulationPLCDRBE byte = 0x02
	EncapsulationPLCDRLE byte = 0x03
)

// EncapsulationLength 封装头长度
const EncapsulationLength = 4

// WriteEncapsulation 按消息当前字节序写入封装头
func WriteEncapsulation(m *cdr.Message) error {
	if err := m.Reserve(EncapsulationLength); err != nil {
		return fmt.Errorf("%w: encapsulation: %w", ErrBufferFull, err)
	}
	kind := EncapsulationPLCDRLE
	if m.Endianness() == cdr.BigEndian {
		kind = EncapsulationPLCDRBE
	}
	_ = m.AddOctet(0)
	_ = m.AddOctet(kind)
	_ = m.AddPadding(2)
	return nil
}

// ReadEncapsulation 读取封装头并据此设置消息字节序
func ReadEncapsulation(m *cdr.Message) error {
	if m.Remaining() < EncapsulationLength {
		return fmt.Errorf("%w: encapsulation header", ErrTruncated)
	}
	_, _ = m.ReadOctet()
	kind, _ := m.ReadOctet()
	switch kind {
	case EncapsulationPLCDRBE:
		m.SetEndianness(cdr.BigEndian)
	case EncapsulationPLCDRLE:
		m.SetEndianness(cdr.LittleEndian)
	default:
		return fmt.Errorf("%w: 0x%02x", ErrBadEncapsulation, kind)
	}
	return m.Skip(2)
}
