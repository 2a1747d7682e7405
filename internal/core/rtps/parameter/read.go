package parameter

import (
	"fmt"

	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// Handler 逐个处理解码出的参数，返回非 nil 错误时停止解码
type Handler func(p Parameter) error

// ReadList 解码参数列表直到 PID_SENTINEL
//
// useEncapsulation 为 true 时先读取封装头并设置字节序，否则沿用消息当前字节序。
// 返回参数列表（不含封装头）占用的字节数。
func ReadList(m *cdr.Message, useEncapsulation bool, fn Handler) (uint32, error) {
	if useEncapsulation {
		if err := ReadEncapsulation(m); err != nil {
			return 0, err
		}
	}

	start := m.Pos()
	for {
		if m.Remaining() < HeaderLength {
			return 0, fmt.Errorf("%w: missing %s", ErrTruncated, PIDSentinel)
		}
		rawID, _ := m.ReadUint16()
		length, _ := m.ReadUint16()
		id := ID(rawID)

		if id == PIDSentinel {
			return uint32(m.Pos() - start), nil
		}
		if length%4 != 0 {
			return 0, fmt.Errorf("%w: %s length %d is not a multiple of 4", ErrInvalidLength, id, length)
		}
		if int(length) > m.Remaining() {
			return 0, fmt.Errorf("%w: %s length %d exceeds %d remaining bytes", ErrTruncated, id, length, m.Remaining())
		}

		payload, _ := m.ReadOctets(int(length))
		if id == PIDPad {
			continue
		}

		p, err := decode(id, payload, m.Endianness())
		if err != nil {
			return 0, err
		}
		if err := fn(p); err != nil {
			return 0, err
		}
	}
}

// decode 根据 id 选择参数类型并解析内容
func decode(id ID, payload []byte, endian cdr.Endianness) (Parameter, error) {
	sub := cdr.NewMessageFromBytes(payload)
	sub.SetEndianness(endian)

	var (
		p   Parameter
		err error
	)
	switch id {
	case PIDProtocolVersion:
		p, err = decodeProtocolVersion(sub)
	case PIDVendorID:
		p, err = decodeVendorID(sub)
	case PIDExpectsInlineQos:
		p, err = decodeBool(id, sub)
	case PIDParticipantGUID:
		p, err = decodeGUID(id, sub)
	case PIDKeyHash:
		p, err = decodeKeyHash(sub)
	case PIDMetatrafficUnicastLocator, PIDMetatrafficMulticastLocator,
		PIDDefaultUnicastLocator, PIDDefaultMulticastLocator:
		p, err = decodeLocator(id, sub)
	case PIDParticipantLeaseDuration:
		p, err = decodeTime(id, sub)
	case PIDBuiltinEndpointSet:
		p, err = decodeBuiltinEndpointSet(sub)
	case PIDEntityName:
		p, err = decodeString(id, sub)
	case PIDUserData:
		p, err = decodeUserData(sub)
	case PIDPropertyList:
		p, err = decodePropertyList(sub)
	case PIDIdentityToken, PIDPermissionsToken:
		p, err = decodeToken(id, sub)
	case PIDParticipantSecurityInfo:
		p, err = decodeParticipantSecurityInfo(sub)
	default:
		return Unknown{PID: id, Payload: payload}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParameter, id, err)
	}
	return p, nil
}

func expectLength(sub *cdr.Message, want int) error {
	if sub.Remaining() != want {
		return fmt.Errorf("length %d, want %d", sub.Remaining(), want)
	}
	return nil
}

func decodeProtocolVersion(sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, ProtocolVersionLength); err != nil {
		return nil, err
	}
	major, _ := sub.ReadOctet()
	minor, _ := sub.ReadOctet()
	return ProtocolVersion{Version: types.ProtocolVersion{Major: major, Minor: minor}}, nil
}

func decodeVendorID(sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, VendorIDLength); err != nil {
		return nil, err
	}
	hi, _ := sub.ReadOctet()
	lo, _ := sub.ReadOctet()
	return VendorID{Vendor: types.VendorID{hi, lo}}, nil
}

func decodeBool(id ID, sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, BoolLength); err != nil {
		return nil, err
	}
	v, _ := sub.ReadOctet()
	return Bool{PID: id, Value: v != 0}, nil
}

func decodeGUID(id ID, sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, GUIDLength); err != nil {
		return nil, err
	}
	raw, _ := sub.ReadOctets(GUIDLength)
	return GUID{PID: id, GUID: types.GUIDFromBytes([types.GUIDSize]byte(raw))}, nil
}

func decodeKeyHash(sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, KeyHashLength); err != nil {
		return nil, err
	}
	raw, _ := sub.ReadOctets(KeyHashLength)
	return KeyHash{Key: types.InstanceHandle(raw)}, nil
}

func decodeLocator(id ID, sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, LocatorLength); err != nil {
		return nil, err
	}
	kind, _ := sub.ReadInt32()
	port, _ := sub.ReadUint32()
	addr, _ := sub.ReadOctets(types.LocatorAddressSize)
	return Locator{PID: id, Locator: types.Locator{
		Kind:    types.LocatorKind(kind),
		Port:    port,
		Address: [types.LocatorAddressSize]byte(addr),
	}}, nil
}

func decodeTime(id ID, sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, TimeLength); err != nil {
		return nil, err
	}
	secs, _ := sub.ReadInt32()
	frac, _ := sub.ReadUint32()
	return Time{PID: id, Duration: types.DurationFromWire(secs, frac)}, nil
}

func decodeBuiltinEndpointSet(sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, BuiltinEndpointSetLength); err != nil {
		return nil, err
	}
	v, _ := sub.ReadUint32()
	return BuiltinEndpointSet{Endpoints: types.BuiltinEndpointSet(v)}, nil
}

func decodeParticipantSecurityInfo(sub *cdr.Message) (Parameter, error) {
	if err := expectLength(sub, ParticipantSecurityInfoLength); err != nil {
		return nil, err
	}
	attrs, _ := sub.ReadUint32()
	plugin, _ := sub.ReadUint32()
	return ParticipantSecurityInfo{SecurityAttributes: attrs, PluginSecurityAttributes: plugin}, nil
}

func decodeString(id ID, sub *cdr.Message) (Parameter, error) {
	s, err := sub.ReadString()
	if err != nil {
		return nil, err
	}
	return String{PID: id, Value: s}, nil
}

func decodeUserData(sub *cdr.Message) (Parameter, error) {
	data, err := sub.ReadSequence()
	if err != nil {
		return nil, err
	}
	return UserData{Data: data}, nil
}

// readCount 读取序列元素个数，每个元素至少占 minSize 字节，借此拒绝伪造的超大计数
func readCount(sub *cdr.Message, minSize int) (int, error) {
	n, err := sub.ReadUint32()
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minSize) > int64(sub.Remaining()) {
		return 0, fmt.Errorf("sequence count %d exceeds payload", n)
	}
	return int(n), nil
}

func decodePropertyList(sub *cdr.Message) (Parameter, error) {
	n, err := readCount(sub, 8)
	if err != nil {
		return nil, err
	}
	props := make([]types.PropertyPair, 0, n)
	for i := 0; i < n; i++ {
		name, err := sub.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := sub.ReadString()
		if err != nil {
			return nil, err
		}
		props = append(props, types.PropertyPair{Name: name, Value: value})
	}
	return PropertyList{Properties: props}, nil
}

func decodeToken(id ID, sub *cdr.Message) (Parameter, error) {
	classID, err := sub.ReadString()
	if err != nil {
		return nil, err
	}
	tok := types.Token{ClassID: classID}

	n, err := readCount(sub, 8)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		name, err := sub.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := sub.ReadString()
		if err != nil {
			return nil, err
		}
		tok.Properties = append(tok.Properties, types.Property{Name: name, Value: value, Propagate: true})
	}

	n, err = readCount(sub, 8)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		name, err := sub.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := sub.ReadSequence()
		if err != nil {
			return nil, err
		}
		tok.BinaryProperties = append(tok.BinaryProperties, types.BinaryProperty{Name: name, Value: value, Propagate: true})
	}
	return Token{PID: id, Token: tok}, nil
}
