package parameter

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

func testParameters() []Parameter {
	guid := types.GUID{
		Prefix: types.GuidPrefix{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Entity: types.EntityIDParticipant,
	}
	return []Parameter{
		ProtocolVersion{Version: types.ProtocolVersion{Major: 2, Minor: 3}},
		VendorID{Vendor: types.VendorIDLocal},
		Bool{PID: PIDExpectsInlineQos, Value: true},
		GUID{PID: PIDParticipantGUID, GUID: guid},
		KeyHash{Key: guid.InstanceHandle()},
		Locator{PID: PIDMetatrafficUnicastLocator, Locator: types.MustParseLocator("udpv4:192.168.1.1:7410")},
		Locator{PID: PIDDefaultMulticastLocator, Locator: types.MustParseLocator("UDPv6:[ff02::1]:7401")},
		Time{PID: PIDParticipantLeaseDuration, Duration: types.Duration{Seconds: 20, Nanosec: 500_000_000}},
		BuiltinEndpointSet{Endpoints: types.DefaultBuiltinEndpoints},
		String{PID: PIDEntityName, Value: "alice"},
		UserData{Data: []byte{0xde, 0xad, 0xbe}},
		PropertyList{Properties: []types.PropertyPair{{Name: "k1", Value: "v1"}, {Name: "key-two", Value: ""}}},
		Token{PID: PIDIdentityToken, Token: types.Token{
			ClassID:          "DDS:Auth:PKI-DH:1.0",
			Properties:       []types.Property{{Name: "dds.cert.sn", Value: "CN=alice", Propagate: true}},
			BinaryProperties: []types.BinaryProperty{{Name: "c.id", Value: []byte{1, 2, 3, 4, 5}, Propagate: true}},
		}},
		Token{PID: PIDPermissionsToken, Token: types.Token{ClassID: "DDS:Access:Permissions:1.0"}},
		ParticipantSecurityInfo{SecurityAttributes: 0x80000001, PluginSecurityAttributes: 0x80000003},
		Unknown{PID: ID(0x8001), Payload: []byte{9, 9, 9, 9}},
	}
}

func encodeList(t *testing.T, endian cdr.Endianness, params []Parameter) []byte {
	t.Helper()
	msg := cdr.NewMessage(cdr.DefaultMessageSize)
	msg.SetEndianness(endian)
	require.NoError(t, WriteEncapsulation(msg))
	for _, p := range params {
		require.NoError(t, Write(msg, p))
	}
	require.NoError(t, WriteSentinel(msg))
	return msg.Bytes()
}

func decodeList(t *testing.T, data []byte) ([]Parameter, error) {
	t.Helper()
	var got []Parameter
	_, err := ReadList(cdr.NewMessageFromBytes(data), true, func(p Parameter) error {
		got = append(got, p)
		return nil
	})
	return got, err
}

// TestReadList_RoundTrip 测试两种字节序下所有参数类型的往返
func TestReadList_RoundTrip(t *testing.T) {
	for _, endian := range []cdr.Endianness{cdr.LittleEndian, cdr.BigEndian} {
		t.Run(endian.String(), func(t *testing.T) {
			params := testParameters()
			data := encodeList(t, endian, params)
			assert.Zero(t, len(data)%4)

			got, err := decodeList(t, data)
			require.NoError(t, err)
			assert.Equal(t, params, got)
		})
	}
}

// TestReadList_Size 测试返回的列表长度
func TestReadList_Size(t *testing.T) {
	params := testParameters()
	data := encodeList(t, cdr.LittleEndian, params)

	size, err := ReadList(cdr.NewMessageFromBytes(data), true, func(Parameter) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, uint32(len(data)-EncapsulationLength), size)

	want := HeaderLength
	for _, p := range params {
		want += Size(p)
	}
	assert.Equal(t, want, int(size))
}

// TestEncapsulation 测试封装头布局与字节序
func TestEncapsulation(t *testing.T) {
	le := cdr.NewMessage(8)
	require.NoError(t, WriteEncapsulation(le))
	assert.Equal(t, []byte{0x00, 0x03, 0x00, 0x00}, le.Bytes())

	be := cdr.NewMessage(8)
	be.SetEndianness(cdr.BigEndian)
	require.NoError(t, WriteEncapsulation(be))
	assert.Equal(t, []byte{0x00, 0x02, 0x00, 0x00}, be.Bytes())

	in := cdr.NewMessageFromBytes(be.Bytes())
	require.NoError(t, ReadEncapsulation(in))
	assert.Equal(t, cdr.BigEndian, in.Endianness())

	bad := cdr.NewMessageFromBytes([]byte{0x00, 0x01, 0x00, 0x00})
	assert.ErrorIs(t, ReadEncapsulation(bad), ErrBadEncapsulation)

	short := cdr.NewMessageFromBytes([]byte{0x00})
	assert.ErrorIs(t, ReadEncapsulation(short), ErrTruncated)
}

// TestWrite_WireLayout 测试单个参数的线上布局
func TestWrite_WireLayout(t *testing.T) {
	msg := cdr.NewMessage(64)
	require.NoError(t, Write(msg, ProtocolVersion{Version: types.ProtocolVersion{Major: 2, Minor: 3}}))
	require.NoError(t, Write(msg, String{PID: PIDEntityName, Value: "alice"}))

	assert.Equal(t, []byte{
		0x15, 0x00, 0x04, 0x00, 2, 3, 0, 0,
		0x62, 0x00, 0x0c, 0x00, 0x06, 0x00, 0x00, 0x00, 'a', 'l', 'i', 'c', 'e', 0, 0, 0,
	}, msg.Bytes())
}

// TestWrite_BufferFull 测试容量不足时不写入半个参数
func TestWrite_BufferFull(t *testing.T) {
	msg := cdr.NewMessage(10)
	require.NoError(t, Write(msg, BuiltinEndpointSet{Endpoints: 1}))

	err := Write(msg, BuiltinEndpointSet{Endpoints: 2})
	assert.ErrorIs(t, err, ErrBufferFull)
	assert.ErrorIs(t, err, cdr.ErrBufferFull)
	assert.Equal(t, 8, msg.Len())

	assert.ErrorIs(t, WriteSentinel(cdr.NewMessage(2)), ErrBufferFull)
}

// TestWrite_TooLarge 测试超过 u16 长度的参数
func TestWrite_TooLarge(t *testing.T) {
	msg := cdr.NewMessage(1 << 17)
	err := Write(msg, UserData{Data: make([]byte, 1<<16)})
	assert.ErrorIs(t, err, ErrParameterTooLarge)
	assert.Zero(t, msg.Len())
}

// TestReadList_Framing 测试各种帧错误
func TestReadList_Framing(t *testing.T) {
	valid := encodeList(t, cdr.LittleEndian, []Parameter{
		VendorID{Vendor: types.VendorIDLocal},
	})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "missing sentinel",
			data: valid[:len(valid)-4],
			want: ErrTruncated,
		},
		{
			name: "truncated header",
			data: valid[:len(valid)-2],
			want: ErrTruncated,
		},
		{
			name: "length exceeds buffer",
			data: []byte{0x00, 0x03, 0x00, 0x00, 0x16, 0x00, 0x40, 0x00, 1, 15, 0, 0},
			want: ErrTruncated,
		},
		{
			name: "length not multiple of 4",
			data: []byte{0x00, 0x03, 0x00, 0x00, 0x16, 0x00, 0x03, 0x00, 1, 15, 0, 0, 0x01, 0x00, 0x00, 0x00},
			want: ErrInvalidLength,
		},
		{
			name: "bad encapsulation",
			data: append([]byte{0x00, 0x07, 0x00, 0x00}, valid[4:]...),
			want: ErrBadEncapsulation,
		},
		{
			name: "protocol version with wrong length",
			data: []byte{0x00, 0x03, 0x00, 0x00, 0x15, 0x00, 0x08, 0x00, 2, 3, 0, 0, 0, 0, 0, 0, 0x01, 0x00, 0x00, 0x00},
			want: ErrInvalidParameter,
		},
		{
			name: "string longer than parameter",
			data: []byte{0x00, 0x03, 0x00, 0x00, 0x62, 0x00, 0x08, 0x00, 0x40, 0x00, 0x00, 0x00, 'a', 'b', 'c', 0, 0x01, 0x00, 0x00, 0x00},
			want: ErrInvalidParameter,
		},
		{
			name: "property count overflow",
			data: []byte{0x00, 0x03, 0x00, 0x00, 0x59, 0x00, 0x04, 0x00, 0xff, 0xff, 0xff, 0xff, 0x01, 0x00, 0x00, 0x00},
			want: ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeList(t, tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestReadList_UnknownAndPad 测试未知参数透传与 PAD 跳过
func TestReadList_UnknownAndPad(t *testing.T) {
	data := encodeList(t, cdr.LittleEndian, []Parameter{
		Unknown{PID: PIDPad, Payload: []byte{0, 0, 0, 0}},
		Unknown{PID: ID(0x4abc), Payload: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		VendorID{Vendor: types.VendorIDLocal},
	})

	got, err := decodeList(t, data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Unknown{PID: ID(0x4abc), Payload: []byte{1, 2, 3, 4, 5, 6, 7, 8}}, got[0])
	assert.Equal(t, VendorID{Vendor: types.VendorIDLocal}, got[1])
}

// TestReadList_AdvancesByDeclaredLength 测试参数内多余字节不影响后续解析
func TestReadList_AdvancesByDeclaredLength(t *testing.T) {
	data := []byte{
		0x00, 0x03, 0x00, 0x00,
		// PID_ENTITY_NAME，声明 16 字节，字符串只占 8 字节
		0x62, 0x00, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 'x', 0, 0, 0, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee,
		0x58, 0x00, 0x04, 0x00, 0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}

	got, err := decodeList(t, data)
	require.NoError(t, err)
	assert.Equal(t, []Parameter{
		String{PID: PIDEntityName, Value: "x"},
		BuiltinEndpointSet{Endpoints: 3},
	}, got)
}

// TestReadList_HandlerStops 测试回调错误终止解码
func TestReadList_HandlerStops(t *testing.T) {
	data := encodeList(t, cdr.LittleEndian, testParameters())
	errStop := errors.New("stop")

	calls := 0
	_, err := ReadList(cdr.NewMessageFromBytes(data), true, func(p Parameter) error {
		calls++
		if _, ok := p.(VendorID); ok {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, calls)
}

// TestReadList_NoEncapsulation 测试不带封装头时沿用消息字节序
func TestReadList_NoEncapsulation(t *testing.T) {
	msg := cdr.NewMessage(64)
	msg.SetEndianness(cdr.BigEndian)
	require.NoError(t, Write(msg, BuiltinEndpointSet{Endpoints: 0x0102}))
	require.NoError(t, WriteSentinel(msg))

	in := cdr.NewMessageFromBytes(msg.Bytes())
	in.SetEndianness(cdr.BigEndian)

	var got Parameter
	_, err := ReadList(in, false, func(p Parameter) error {
		got = p
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, BuiltinEndpointSet{Endpoints: 0x0102}, got)
}

// TestReadList_RandomInputNeverPanics 测试随机输入不会 panic
func TestReadList_RandomInputNeverPanics(t *testing.T) {
	valid := encodeList(t, cdr.LittleEndian, testParameters())
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		data := make([]byte, len(valid))
		copy(data, valid)
		for j := 0; j < 1+rng.Intn(8); j++ {
			data[rng.Intn(len(data))] = byte(rng.Intn(256))
		}
		data = data[:rng.Intn(len(data)+1)]

		assert.NotPanics(t, func() {
			_, _ = decodeList(t, data)
		})
	}
}

// TestID_String 测试参数名
func TestID_String(t *testing.T) {
	assert.Equal(t, "PID_PARTICIPANT_GUID", PIDParticipantGUID.String())
	assert.Equal(t, "PID(0x8001)", ID(0x8001).String())
	assert.True(t, PIDDefaultUnicastLocator.IsLocator())
	assert.False(t, PIDEntityName.IsLocator())
	assert.True(t, PIDParticipantSecurityInfo.IsSecurity())
}
