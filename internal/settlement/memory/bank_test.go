package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "fisc/pkg/domain"
	dErrors "fisc/pkg/domain-errors"
)

var (
	treasury  = id.MustParsePrincipal("0x" + strings.Repeat("aa", id.AddressLength))
	citizen   = id.MustParsePrincipal("0x" + strings.Repeat("bb", id.AddressLength))
	recipient = id.MustParsePrincipal("0x" + strings.Repeat("cc", id.AddressLength))
)

func TestBankDepositAndBalance(t *testing.T) {
	ctx := context.Background()
	bank := NewBank(treasury, nil)

	balance, err := bank.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	require.NoError(t, bank.Deposit(ctx, citizen, 100))
	require.NoError(t, bank.Deposit(ctx, citizen, 50))

	balance, err = bank.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)
}

func TestBankTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves funds atomically", func(t *testing.T) {
		bank := NewBank(treasury, map[id.Principal]uint64{treasury: 100})
		require.NoError(t, bank.Transfer(ctx, recipient, 60))

		balance, err := bank.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), balance)

		credited, err := bank.AccountBalance(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, uint64(60), credited)
	})

	t.Run("rejects overdraft with no movement", func(t *testing.T) {
		bank := NewBank(treasury, map[id.Principal]uint64{treasury: 40})
		err := bank.Transfer(ctx, recipient, 1000)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTransferFailed))
		assert.Contains(t, err.Error(), recipient.String())

		balance, err := bank.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), balance)

		credited, err := bank.AccountBalance(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), credited)
	})

	t.Run("rejects zero recipient", func(t *testing.T) {
		bank := NewBank(treasury, map[id.Principal]uint64{treasury: 40})
		err := bank.Transfer(ctx, id.ZeroPrincipal, 10)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidAddress))
	})
}
