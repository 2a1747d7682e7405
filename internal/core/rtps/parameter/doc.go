// Package parameter 实现 RTPS 参数列表（ParameterList）编解码
//
// 参数列表是自描述的 (id, length, payload) 序列，以 PID_SENTINEL 结束：
//
//	┌──────────┬──────────┬─────────────────────┐
//	│ id: u16  │ len: u16 │ payload (len bytes) │  ...  PID_SENTINEL, 0
//	└──────────┴──────────┴─────────────────────┘
//
// # 参数类型
//
// Parameter 是封闭的联合类型，解码时根据 id 直接选择具体类型，
// 使用方通过 type switch 处理：
//
//	_, err := parameter.ReadList(msg, true, func(p parameter.Parameter) error {
//	    switch v := p.(type) {
//	    case parameter.ProtocolVersion:
//	        ...
//	    case parameter.Unknown:
//	        // 前向兼容：忽略
//	    }
//	    return nil
//	})
//
// # 解码规则
//
//   - 长度必须是 4 的倍数且不超过剩余数据，否则整体失败
//   - 游标总是按声明长度前进，单个参数的内容不会影响后续参数的定位
//   - 已识别 id 的内容与其类型不符时返回 ErrInvalidParameter
//   - 未识别的 id 以 Unknown 交给回调
//   - 回调返回非 nil 错误时停止解码并原样返回
//   - 不可信输入不会导致 panic
package parameter
