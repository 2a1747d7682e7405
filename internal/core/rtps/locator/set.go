package locator

import (
	"slices"

	"github.com/cherho0/Fast-DDS/pkg/types"
)

// Set 单播与组播地址集合
type Set struct {
	unicast   []types.Locator
	multicast []types.Locator

	maxUnicast   int
	maxMulticast int
}

// NewSet 创建有界集合，上限为 0 表示不限
func NewSet(maxUnicast, maxMulticast int) Set {
	return Set{
		maxUnicast:   max(maxUnicast, 0),
		maxMulticast: max(maxMulticast, 0),
	}
}

// MaxUnicast 返回单播容量上限
func (s *Set) MaxUnicast() int { return s.maxUnicast }

// MaxMulticast 返回组播容量上限
func (s *Set) MaxMulticast() int { return s.maxMulticast }

// AddUnicast 追加单播地址，已满时返回 false
func (s *Set) AddUnicast(l types.Locator) bool {
	return appendBounded(&s.unicast, s.maxUnicast, l)
}

// AddMulticast 追加组播地址，已满时返回 false
func (s *Set) AddMulticast(l types.Locator) bool {
	return appendBounded(&s.multicast, s.maxMulticast, l)
}

// Unicast 返回单播地址副本
func (s *Set) Unicast() []types.Locator {
	return slices.Clone(s.unicast)
}

// Multicast 返回组播地址副本
func (s *Set) Multicast() []types.Locator {
	return slices.Clone(s.multicast)
}

// Len 返回地址总数
func (s *Set) Len() int {
	return len(s.unicast) + len(s.multicast)
}

// IsEmpty 检查集合是否为空
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Clear 清空两个列表，保留容量上限
func (s *Set) Clear() {
	s.unicast = nil
	s.multicast = nil
}

// Assign 用 other 的地址替换当前内容，保留自身容量上限
//
// 超出自身上限的地址被丢弃，返回被丢弃的数量。
func (s *Set) Assign(other *Set) int {
	s.Clear()
	dropped := 0
	for _, l := range other.unicast {
		if !s.AddUnicast(l) {
			dropped++
		}
	}
	for _, l := range other.multicast {
		if !s.AddMulticast(l) {
			dropped++
		}
	}
	return dropped
}

// Clone 深拷贝（含容量上限）
func (s *Set) Clone() Set {
	return Set{
		unicast:      slices.Clone(s.unicast),
		multicast:    slices.Clone(s.multicast),
		maxUnicast:   s.maxUnicast,
		maxMulticast: s.maxMulticast,
	}
}

// Equal 比较地址内容与顺序，不比较容量上限
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.unicast, other.unicast) && slices.Equal(s.multicast, other.multicast)
}

func appendBounded(list *[]types.Locator, limit int, l types.Locator) bool {
	if limit > 0 && len(*list) >= limit {
		return false
	}
	*list = append(*list, l)
	return true
}
