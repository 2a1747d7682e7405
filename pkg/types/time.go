package types

import (
	"fmt"
	"math"
	"time"
)

// Duration RTPS 时长（秒 + 纳秒）
//
// 线上以 (seconds, fraction) 表示，fraction 单位为 1/2^32 秒。
type Duration struct {
	Seconds int32
	Nanosec uint32
}

var (
	// DurationZero 零时长
	DurationZero = Duration{}

	// DurationInfinite 无限时长
	DurationInfinite = Duration{Seconds: math.MaxInt32, Nanosec: math.MaxUint32}
)

const nanosPerSecond = 1_000_000_000

// DurationFromStd 从 time.Duration 构造
//
// 超出 int32 秒范围时返回 DurationInfinite。
func DurationFromStd(d time.Duration) Duration {
	if d < 0 {
		return DurationZero
	}
	secs := int64(d / time.Second)
	if secs >= math.MaxInt32 {
		return DurationInfinite
	}
	return Duration{Seconds: int32(secs), Nanosec: uint32(d % time.Second)}
}

// DurationFromWire 从线上 (seconds, fraction) 构造
func DurationFromWire(seconds int32, fraction uint32) Duration {
	if fraction == math.MaxUint32 {
		return Duration{Seconds: seconds, Nanosec: math.MaxUint32}
	}
	return Duration{Seconds: seconds, Nanosec: uint32((uint64(fraction) * nanosPerSecond) >> 32)}
}

// Fraction 返回线上 fraction
//
// 向上取整，保证 DurationFromWire(d.Seconds, d.Fraction()) == d。
func (d Duration) Fraction() uint32 {
	if d.Nanosec == math.MaxUint32 {
		return math.MaxUint32
	}
	f := ((uint64(d.Nanosec) << 32) + nanosPerSecond - 1) / nanosPerSecond
	if f >= math.MaxUint32 {
		return math.MaxUint32 - 1
	}
	return uint32(f)
}

// Normalize 将超过一秒的纳秒部分进位到秒
//
// Nanosec 为 MaxUint32 的无限哨兵保持不变；秒溢出 int32 时返回 DurationInfinite。
func (d Duration) Normalize() Duration {
	if d.Nanosec == math.MaxUint32 || d.Nanosec < nanosPerSecond {
		return d
	}
	secs := int64(d.Seconds) + int64(d.Nanosec/nanosPerSecond)
	if secs >= math.MaxInt32 {
		return DurationInfinite
	}
	return Duration{Seconds: int32(secs), Nanosec: d.Nanosec % nanosPerSecond}
}

// IsInfinite 检查是否为无限时长
func (d Duration) IsInfinite() bool {
	return d == DurationInfinite
}

// Micros 返回微秒整数形式
func (d Duration) Micros() int64 {
	return int64(d.Seconds)*1_000_000 + int64(d.Nanosec)/1_000
}

// Std 返回 time.Duration 形式
func (d Duration) Std() time.Duration {
	if d.IsInfinite() {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d.Seconds)*time.Second + time.Duration(d.Nanosec)
}

// String 返回可读表示
func (d Duration) String() string {
	if d.IsInfinite() {
		return "infinite"
	}
	return fmt.Sprintf("%ds %dns", d.Seconds, d.Nanosec)
}
