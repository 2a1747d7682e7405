package participant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherho0/Fast-DDS/internal/core/rtps/parameter"
	"github.com/cherho0/Fast-DDS/internal/core/security"
	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

func encode(t *testing.T, pd *ProxyData, endian cdr.Endianness) []byte {
	t.Helper()
	msg := cdr.NewMessage(cdr.DefaultMessageSize)
	msg.SetEndianness(endian)
	require.NoError(t, pd.WriteToCDRMessage(msg, true))
	return msg.Bytes()
}

func decode(t *testing.T, data []byte, transform LocatorTransformer) (*ProxyData, error) {
	t.Helper()
	pd := New(testAlloc)
	err := pd.ReadFromCDRMessage(cdr.NewMessageFromBytes(data), true, transform)
	return pd, err
}

// rawList 直接拼装参数列表
func rawList(t *testing.T, params ...parameter.Parameter) []byte {
	t.Helper()
	msg := cdr.NewMessage(cdr.DefaultMessageSize)
	require.NoError(t, parameter.WriteEncapsulation(msg))
	for _, p := range params {
		require.NoError(t, parameter.Write(msg, p))
	}
	require.NoError(t, parameter.WriteSentinel(msg))
	return msg.Bytes()
}

func wantAfterWire(pd *ProxyData) Info {
	want := pd.Info()
	want.Version = types.SequenceNumber{}
	if !security.Enabled {
		want.Security = SecurityData{}
	}
	return want
}

// TestRoundTrip 测试两种字节序下的完整往返
func TestRoundTrip(t *testing.T) {
	for _, endian := range []cdr.Endianness{cdr.LittleEndian, cdr.BigEndian} {
		t.Run(endian.String(), func(t *testing.T) {
			src := populated(t)
			data := encode(t, src, endian)

			got, err := decode(t, data, nil)
			require.NoError(t, err)
			assert.Equal(t, wantAfterWire(src), got.Info())
		})
	}
}

// TestRoundTrip_Alice 测试典型公告的五个字段
func TestRoundTrip_Alice(t *testing.T) {
	src := New(testAlloc)
	src.SetGUID(aliceGUID())
	src.SetProtocolVersion(types.ProtocolVersion{Major: 2, Minor: 3})
	src.AddMetatrafficUnicastLocator(types.MustParseLocator("udpv4:192.168.1.1:7410"))
	src.SetLeaseDuration(types.Duration{Seconds: 20})
	src.SetName("alice")

	got, err := decode(t, encode(t, src, cdr.LittleEndian), AcceptAllLocators)
	require.NoError(t, err)

	assert.Equal(t, aliceGUID(), got.GUID())
	assert.Equal(t, aliceGUID().InstanceHandle(), got.Key())
	assert.Equal(t, types.ProtocolVersion{Major: 2, Minor: 3}, got.ProtocolVersion())
	meta := got.MetatrafficLocators()
	assert.Equal(t, []types.Locator{types.MustParseLocator("UDPv4:[192.168.1.1]:7410")}, meta.Unicast())
	assert.Equal(t, types.Duration{Seconds: 20}, got.LeaseDuration())
	assert.Equal(t, int64(20_000_000), got.LeaseDurationMicros())
	assert.Equal(t, "alice", got.Name())
	assert.Zero(t, got.BuiltinEndpoints())
}

// TestRoundTrip_UnnormalizedLease 测试纳秒溢出的租约往返一致
func TestRoundTrip_UnnormalizedLease(t *testing.T) {
	src := New(testAlloc)
	src.SetGUID(aliceGUID())
	src.SetLeaseDuration(types.Duration{Seconds: 1, Nanosec: 1_500_000_000})

	want := types.Duration{Seconds: 2, Nanosec: 500_000_000}
	assert.Equal(t, want, src.LeaseDuration())
	assert.Equal(t, int64(2_500_000), src.LeaseDurationMicros())

	got, err := decode(t, encode(t, src, cdr.BigEndian), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got.LeaseDuration())
	assert.Equal(t, src.LeaseDurationMicros(), got.LeaseDurationMicros())
}

// TestWrite_OmitsOptional 测试可选参数仅在有值时写出
func TestWrite_OmitsOptional(t *testing.T) {
	pd := New(testAlloc)
	pd.SetGUID(aliceGUID())

	var ids []parameter.ID
	_, err := parameter.ReadList(cdr.NewMessageFromBytes(encode(t, pd, cdr.LittleEndian)), true,
		func(p parameter.Parameter) error {
			ids = append(ids, p.ID())
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []parameter.ID{
		parameter.PIDProtocolVersion,
		parameter.PIDVendorID,
		parameter.PIDParticipantGUID,
		parameter.PIDParticipantLeaseDuration,
		parameter.PIDBuiltinEndpointSet,
	}, ids)
}

// TestWrite_Order 测试参数写出顺序
func TestWrite_Order(t *testing.T) {
	var ids []parameter.ID
	_, err := parameter.ReadList(cdr.NewMessageFromBytes(encode(t, populated(t), cdr.BigEndian)), true,
		func(p parameter.Parameter) error {
			ids = append(ids, p.ID())
			return nil
		})
	require.NoError(t, err)

	want := []parameter.ID{
		parameter.PIDProtocolVersion,
		parameter.PIDVendorID,
		parameter.PIDExpectsInlineQos,
		parameter.PIDParticipantGUID,
		parameter.PIDMetatrafficMulticastLocator,
		parameter.PIDMetatrafficUnicastLocator,
		parameter.PIDDefaultUnicastLocator,
		parameter.PIDDefaultMulticastLocator,
		parameter.PIDParticipantLeaseDuration,
		parameter.PIDBuiltinEndpointSet,
		parameter.PIDEntityName,
		parameter.PIDUserData,
		parameter.PIDPropertyList,
	}
	if security.Enabled {
		want = append(want, parameter.PIDIdentityToken, parameter.PIDPermissionsToken, parameter.PIDParticipantSecurityInfo)
	}
	assert.Equal(t, want, ids)
}

// TestWrite_BufferFull 测试缓冲区不足
func TestWrite_BufferFull(t *testing.T) {
	msg := cdr.NewMessage(32)
	err := populated(t).WriteToCDRMessage(msg, true)
	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorIs(t, err, parameter.ErrBufferFull)
}

// TestRead_VersionGate 测试拒绝较旧的主版本
func TestRead_VersionGate(t *testing.T) {
	data := rawList(t,
		parameter.GUID{PID: parameter.PIDParticipantGUID, GUID: aliceGUID()},
		parameter.ProtocolVersion{Version: types.ProtocolVersion{Major: 1, Minor: 9}},
		parameter.String{PID: parameter.PIDEntityName, Value: "old"},
	)

	pd := populated(t)
	err := pd.ReadFromCDRMessage(cdr.NewMessageFromBytes(data), true, nil)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, ErrUnsupportedProtocolVersion)
	assert.Equal(t, New(testAlloc).Info(), pd.Info())
}

// TestRead_NewerVersionAccepted 测试较新的版本被接受
func TestRead_NewerVersionAccepted(t *testing.T) {
	data := rawList(t, parameter.ProtocolVersion{Version: types.ProtocolVersion{Major: 3, Minor: 0}})
	pd, err := decode(t, data, nil)
	require.NoError(t, err)
	assert.Equal(t, types.ProtocolVersion{Major: 3, Minor: 0}, pd.ProtocolVersion())
}

// TestRead_ForwardCompatible 测试未知参数不影响其余字段
func TestRead_ForwardCompatible(t *testing.T) {
	known := []parameter.Parameter{
		parameter.GUID{PID: parameter.PIDParticipantGUID, GUID: aliceGUID()},
		parameter.Locator{PID: parameter.PIDMetatrafficUnicastLocator, Locator: types.MustParseLocator("udpv4:10.0.0.1:7410")},
		parameter.String{PID: parameter.PIDEntityName, Value: "alice"},
	}
	base, err := decode(t, rawList(t, known...), nil)
	require.NoError(t, err)

	unknown := parameter.Unknown{PID: parameter.ID(0x8007), Payload: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	for i := 0; i <= len(known); i++ {
		params := append([]parameter.Parameter{}, known[:i]...)
		params = append(params, unknown)
		params = append(params, known[i:]...)

		got, err := decode(t, rawList(t, params...), nil)
		require.NoError(t, err)
		assert.Equal(t, base.Info(), got.Info(), "unknown parameter at %d", i)
	}
}

// TestRead_LocatorRejection 测试被拒绝的 locator 单独丢弃
func TestRead_LocatorRejection(t *testing.T) {
	rejected := types.MustParseLocator("TCPv4:[10.0.0.2]:7410")
	data := rawList(t,
		parameter.Locator{PID: parameter.PIDMetatrafficUnicastLocator, Locator: types.MustParseLocator("udpv4:10.0.0.1:7410")},
		parameter.Locator{PID: parameter.PIDMetatrafficUnicastLocator, Locator: rejected},
		parameter.Locator{PID: parameter.PIDDefaultUnicastLocator, Locator: types.MustParseLocator("udpv4:10.0.0.1:7411")},
		parameter.Locator{PID: parameter.PIDDefaultMulticastLocator, Locator: types.MustParseLocator("udpv4:239.255.0.1:7401")},
	)

	transform := LocatorTransformFunc(func(l types.Locator) (types.Locator, bool) {
		return l, l != rejected
	})
	pd, err := decode(t, data, transform)
	require.NoError(t, err)

	meta := pd.MetatrafficLocators()
	def := pd.DefaultLocators()
	assert.Equal(t, 3, meta.Len()+def.Len())
	assert.Equal(t, []types.Locator{types.MustParseLocator("udpv4:10.0.0.1:7410")}, meta.Unicast())
}

// TestRead_LocatorTransformApplied 测试使用转换后的 locator
func TestRead_LocatorTransformApplied(t *testing.T) {
	data := rawList(t,
		parameter.Locator{PID: parameter.PIDMetatrafficUnicastLocator, Locator: types.MustParseLocator("udpv4:192.168.1.10:7410")},
	)
	loopback := types.MustParseLocator("udpv4:127.0.0.1:7410")
	pd, err := decode(t, data, LocatorTransformFunc(func(types.Locator) (types.Locator, bool) {
		return loopback, true
	}))
	require.NoError(t, err)
	meta := pd.MetatrafficLocators()
	assert.Equal(t, []types.Locator{loopback}, meta.Unicast())
}

// TestRead_LocatorCapacity 测试超出容量的 locator 被丢弃
func TestRead_LocatorCapacity(t *testing.T) {
	var params []parameter.Parameter
	for i := 0; i < 4; i++ {
		l := types.MustParseLocator("udpv4:239.255.0.1:7400")
		l.Port += uint32(i)
		params = append(params, parameter.Locator{PID: parameter.PIDMetatrafficMulticastLocator, Locator: l})
	}
	pd, err := decode(t, rawList(t, params...), nil)
	require.NoError(t, err)
	meta := pd.MetatrafficLocators()
	assert.Len(t, meta.Multicast(), testAlloc.MaxMulticastLocators)
}

// TestRead_KeyHash 测试 KEY_HASH 同时设置 GUID 与实例键
func TestRead_KeyHash(t *testing.T) {
	data := rawList(t, parameter.KeyHash{Key: aliceGUID().InstanceHandle()})
	pd, err := decode(t, data, nil)
	require.NoError(t, err)
	assert.Equal(t, aliceGUID(), pd.GUID())
	assert.Equal(t, aliceGUID().InstanceHandle(), pd.Key())
}

// TestRead_Malformed 测试帧错误使记录保持清空
func TestRead_Malformed(t *testing.T) {
	data := encode(t, populated(t), cdr.LittleEndian)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"truncated", data[:len(data)-6], parameter.ErrTruncated},
		{"no sentinel", data[:len(data)-4], parameter.ErrTruncated},
		{"bad encapsulation", append([]byte{0x00, 0x07, 0, 0}, data[4:]...), parameter.ErrBadEncapsulation},
		{"empty", nil, parameter.ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := populated(t)
			err := pd.ReadFromCDRMessage(cdr.NewMessageFromBytes(tt.data), true, nil)
			assert.ErrorIs(t, err, ErrDecode)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, New(testAlloc).Info(), pd.Info())
		})
	}
}

// TestRead_InconsistentPayload 测试内容与 PID 不符
func TestRead_InconsistentPayload(t *testing.T) {
	data := rawList(t, parameter.Unknown{PID: parameter.PIDParticipantGUID, Payload: []byte{1, 2, 3, 4}})
	pd, err := decode(t, data, nil)
	assert.ErrorIs(t, err, parameter.ErrInvalidParameter)
	assert.True(t, pd.GUID().IsUnknown())
}

// TestRead_WithoutEncapsulation 测试沿用消息字节序
func TestRead_WithoutEncapsulation(t *testing.T) {
	src := populated(t)
	msg := cdr.NewMessage(cdr.DefaultMessageSize)
	msg.SetEndianness(cdr.BigEndian)
	require.NoError(t, src.WriteToCDRMessage(msg, false))

	in := cdr.NewMessageFromBytes(msg.Bytes())
	in.SetEndianness(cdr.BigEndian)
	pd := New(testAlloc)
	require.NoError(t, pd.ReadFromCDRMessage(in, false, nil))
	assert.Equal(t, wantAfterWire(src), pd.Info())
}

// TestRead_ReusesRecord 测试同一记录连续解码不残留旧数据
func TestRead_ReusesRecord(t *testing.T) {
	pd := New(testAlloc)
	require.NoError(t, pd.ReadFromCDRMessage(cdr.NewMessageFromBytes(encode(t, populated(t), cdr.LittleEndian)), true, nil))

	small := New(testAlloc)
	small.SetGUID(aliceGUID())
	require.NoError(t, pd.ReadFromCDRMessage(cdr.NewMessageFromBytes(encode(t, small, cdr.LittleEndian)), true, nil))

	assert.Empty(t, pd.Name())
	assert.Empty(t, pd.UserData())
	assert.Empty(t, pd.Properties())
	meta := pd.MetatrafficLocators()
	assert.True(t, meta.IsEmpty())
}
