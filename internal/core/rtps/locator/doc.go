// Package locator 实现参与者的单播/组播地址集合
//
// Set 由两个有界列表组成，容量在创建时由分配配置固定：
//
//	set := locator.NewSet(4, 1)
//	set.AddUnicast(types.MustParseLocator("udpv4:192.168.1.1:7410"))
//
// 集合本身不去重；超出容量的地址被丢弃并由 Add* 返回 false。
// Set 不是并发安全的，由持有它的代理数据记录加锁保护。
package locator
