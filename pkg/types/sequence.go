package types

// SequenceNumber RTPS 序列号（高 32 位有符号，低 32 位无符号）
type SequenceNumber struct {
	High int32
	Low  uint32
}

// SequenceNumberFromInt64 从 64 位整数构造
func SequenceNumberFromInt64(v int64) SequenceNumber {
	return SequenceNumber{High: int32(v >> 32), Low: uint32(v)}
}

// Int64 返回 64 位整数形式
func (s SequenceNumber) Int64() int64 {
	return int64(s.High)<<32 | int64(s.Low)
}

// Next 返回下一个序列号
func (s SequenceNumber) Next() SequenceNumber {
	return SequenceNumberFromInt64(s.Int64() + 1)
}

// Less 比较大小
func (s SequenceNumber) Less(other SequenceNumber) bool {
	return s.Int64() < other.Int64()
}
