package jwtprincipal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "fisc/pkg/domain"
	dErrors "fisc/pkg/domain-errors"
)

var testPrincipal = id.MustParsePrincipal("0x" + strings.Repeat("ab", id.AddressLength))

func newTestService() *Service {
	return New("test-signing-key", "fisc", "fisc-api")
}

func TestMintAndValidate(t *testing.T) {
	svc := newTestService()

	token, err := svc.Mint(testPrincipal, time.Hour)
	require.NoError(t, err)

	principal, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testPrincipal, principal)
}

func TestMintRejectsNullPrincipal(t *testing.T) {
	svc := newTestService()
	_, err := svc.Mint(id.ZeroPrincipal, time.Hour)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
}

func TestValidateRejections(t *testing.T) {
	svc := newTestService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Mint(testPrincipal, -time.Minute)
		require.NoError(t, err)
		_, err = svc.Validate(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := New("other-key", "fisc", "fisc-api")
		token, err := other.Mint(testPrincipal, time.Hour)
		require.NoError(t, err)
		_, err = svc.Validate(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
