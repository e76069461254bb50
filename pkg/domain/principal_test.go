package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "fisc/pkg/domain-errors"
)

// TestParsePrincipal_Invariants validates the parsing invariant:
// principals must be well-formed, non-null addresses.
func TestParsePrincipal_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePrincipal("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
	})

	t.Run("rejects missing 0x prefix", func(t *testing.T) {
		_, err := ParsePrincipal(strings.Repeat("ab", AddressLength))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParsePrincipal("0xabcdef")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
	})

	t.Run("rejects non-hex characters", func(t *testing.T) {
		_, err := ParsePrincipal("0x" + strings.Repeat("zz", AddressLength))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
	})

	t.Run("normalizes case", func(t *testing.T) {
		upper, err := ParsePrincipal("0x" + strings.Repeat("AB", AddressLength))
		require.NoError(t, err)
		lower, err := ParsePrincipal("0x" + strings.Repeat("ab", AddressLength))
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("zero address parses but is null", func(t *testing.T) {
		p, err := ParsePrincipal(string(ZeroPrincipal))
		require.NoError(t, err)
		assert.True(t, p.IsZero())
	})
}

func TestPrincipal_IsZero(t *testing.T) {
	assert.True(t, Principal("").IsZero())
	assert.True(t, ZeroPrincipal.IsZero())
	assert.False(t, MustParsePrincipal("0x"+strings.Repeat("01", AddressLength)).IsZero())
}
