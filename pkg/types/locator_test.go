package types

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLocator 测试 Locator 文本解析
func TestParseLocator(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Locator
		wantErr error
	}{
		{
			name:  "short form",
			input: "udpv4:192.168.1.1:7410",
			want:  NewLocator(LocatorKindUDPv4, netip.MustParseAddr("192.168.1.1"), 7410),
		},
		{
			name:  "bracketed form",
			input: "UDPv4:[239.255.0.1]:7400",
			want:  NewLocator(LocatorKindUDPv4, netip.MustParseAddr("239.255.0.1"), 7400),
		},
		{
			name:  "ipv6",
			input: "UDPv6:[ff02::1]:7400",
			want:  NewLocator(LocatorKindUDPv6, netip.MustParseAddr("ff02::1"), 7400),
		},
		{
			name:  "shm without address",
			input: "SHM:[]:7411",
			want:  Locator{Kind: LocatorKindSHM, Port: 7411},
		},
		{name: "unknown kind", input: "quic:1.2.3.4:1", wantErr: ErrUnknownLocatorKind},
		{name: "missing port", input: "UDPv4:1.2.3.4", wantErr: ErrInvalidLocator},
		{name: "bad address", input: "UDPv4:[1.2.3]:7400", wantErr: ErrInvalidLocator},
		{name: "family mismatch", input: "UDPv4:[::1]:7400", wantErr: ErrInvalidLocator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocator(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestLocator_String 测试文本往返
func TestLocator_String(t *testing.T) {
	l := MustParseLocator("udpv4:192.168.1.1:7410")
	assert.Equal(t, "UDPv4:[192.168.1.1]:7410", l.String())

	back, err := ParseLocator(l.String())
	require.NoError(t, err)
	assert.Equal(t, l, back)
}

// TestLocator_AddressLayout 测试 IPv4 地址存放位置
func TestLocator_AddressLayout(t *testing.T) {
	l := MustParseLocator("udpv4:192.168.1.1:7410")
	assert.Equal(t, [4]byte{192, 168, 1, 1}, [4]byte(l.Address[12:]))
	assert.Equal(t, [12]byte{}, [12]byte(l.Address[:12]))
	assert.True(t, l.IsValid())
	assert.False(t, l.IsMulticast())
	assert.True(t, MustParseLocator("UDPv4:[239.255.0.1]:7400").IsMulticast())
	assert.True(t, MustParseLocator("UDPv4:[127.0.0.1]:7400").IsLoopback())
	assert.False(t, InvalidLocator.IsValid())
}
