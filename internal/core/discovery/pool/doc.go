// Package pool 提供参与者代理数据记录的共享对象池
//
// 同一进程内可能有多个发现协议实例同时引用同一个远端参与者。Pool 以 GUID 前缀为键，
// 保证每个参与者同一时刻最多一条活跃记录；每次 Acquire/Lookup/Retain 得到一个独立的
// Handle，最后一个 Handle 释放时记录被清空并回收到空闲列表，且只回收一次。
//
// 使用示例：
//
//	p := pool.New(pool.NewConfig())
//	h, created, err := p.Acquire(prefix)
//	if err != nil {
//	    return err
//	}
//	defer h.Release()
//	if created {
//	    err = h.Data().ReadFromCDRMessage(msg, true, nf)
//	}
package pool
