//go:build !nosecurity

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

// TestRead_SecurityParameters 测试安全参数被赋值
func TestRead_SecurityParameters(t *testing.T) {
	token := types.Token{ClassID: "DDS:Auth:PKI-DH:1.0"}
	data := rawList(t,
		parameter.Token{PID: parameter.PIDIdentityToken, Token: token},
		parameter.ParticipantSecurityInfo{
			SecurityAttributes:       uint32(security.AttrValid | security.AttrDiscoveryProtected),
			PluginSecurityAttributes: uint32(security.PluginValid),
		},
	)

	pd, err := decode(t, data, nil)
	require.NoError(t, err)

	s := pd.Security()
	assert.Equal(t, token, s.IdentityToken)
	assert.True(t, s.PermissionsToken.IsEmpty())
	assert.True(t, s.SecurityAttributes.IsValid())
	assert.Equal(t, security.PluginValid, s.PluginSecurityAttributes)
}

// TestWrite_NonPropagatedProperties 测试不传播的令牌属性不上线
func TestWrite_NonPropagatedProperties(t *testing.T) {
	src := New(testAlloc)
	src.SetSecurity(SecurityData{IdentityToken: types.Token{
		ClassID: "DDS:Auth:PKI-DH:1.0",
		Properties: []types.Property{
			{Name: "public", Value: "1", Propagate: true},
			{Name: "private", Value: "2"},
		},
	}})

	pd, err := decode(t, encode(t, src, cdr.LittleEndian), nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Property{{Name: "public", Value: "1", Propagate: true}}, pd.Security().IdentityToken.Properties)
}
