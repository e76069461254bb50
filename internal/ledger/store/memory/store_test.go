package memory

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
)

var (
	testGov   = id.MustParsePrincipal("0x" + strings.Repeat("01", id.AddressLength))
	testAlice = id.MustParsePrincipal("0x" + strings.Repeat("02", id.AddressLength))
	testBob   = id.MustParsePrincipal("0x" + strings.Repeat("03", id.AddressLength))
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = New(testGov)
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) TestAppendTaxPayment() {
	s.Run("indexes start at zero per principal", func() {
		idx, err := s.store.AppendTaxPayment(s.ctx, testAlice, models.TaxPayment{Amount: 100, Timestamp: 10, Status: models.PaymentProcessed})
		s.Require().NoError(err)
		s.Equal(uint64(0), idx)

		idx, err = s.store.AppendTaxPayment(s.ctx, testAlice, models.TaxPayment{Amount: 50, Timestamp: 11, Status: models.PaymentProcessed})
		s.Require().NoError(err)
		s.Equal(uint64(1), idx)

		idx, err = s.store.AppendTaxPayment(s.ctx, testBob, models.TaxPayment{Amount: 30, Timestamp: 12, Status: models.PaymentProcessed})
		s.Require().NoError(err)
		s.Equal(uint64(0), idx)
	})

	s.Run("citizen record accumulates", func() {
		rec, err := s.store.CitizenRecord(s.ctx, testAlice)
		s.Require().NoError(err)
		s.Equal(uint64(2), rec.PaymentCount)
		s.Equal(uint64(150), rec.TotalPaid)
	})

	s.Run("totals track all principals", func() {
		totals, err := s.store.Totals(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(180), totals.TotalCollected)
		s.Equal(uint64(0), totals.TotalSpent)
	})

	s.Run("unknown principal reads as zero record", func() {
		unknown := id.MustParsePrincipal("0x" + strings.Repeat("ff", id.AddressLength))
		rec, err := s.store.CitizenRecord(s.ctx, unknown)
		s.Require().NoError(err)
		s.Equal(uint64(0), rec.PaymentCount)
		s.Equal(uint64(0), rec.TotalPaid)
	})
}

func (s *MemoryStoreSuite) TestTaxPaymentReads() {
	payment := models.TaxPayment{Amount: 100, Timestamp: 42, Status: models.PaymentProcessed}
	_, err := s.store.AppendTaxPayment(s.ctx, testAlice, payment)
	s.Require().NoError(err)

	s.Run("in-range read returns the stored record", func() {
		got, ok, err := s.store.TaxPayment(s.ctx, testAlice, 0)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(payment, got)
	})

	s.Run("out-of-range read reports not found", func() {
		got, ok, err := s.store.TaxPayment(s.ctx, testAlice, 1)
		s.Require().NoError(err)
		s.False(ok)
		s.Equal(models.TaxPayment{}, got)
	})

	s.Run("repeated reads are identical", func() {
		first, ok, err := s.store.TaxPayment(s.ctx, testAlice, 0)
		s.Require().NoError(err)
		s.True(ok)
		second, ok, err := s.store.TaxPayment(s.ctx, testAlice, 0)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(first, second)
	})
}

func (s *MemoryStoreSuite) TestAppendExpenditure() {
	s.Run("ids are sequential", func() {
		expID, err := s.store.AppendExpenditure(s.ctx, models.Expenditure{Amount: 60, Timestamp: 20, Purpose: "roads", Status: models.ExpenditureCompleted}, "paving contract")
		s.Require().NoError(err)
		s.Equal(uint64(0), expID)

		expID, err = s.store.AppendExpenditure(s.ctx, models.Expenditure{Amount: 10, Timestamp: 21, Purpose: "parks", Status: models.ExpenditureCompleted}, "")
		s.Require().NoError(err)
		s.Equal(uint64(1), expID)
	})

	s.Run("detail is stored under the same id", func() {
		exp, detail, ok, err := s.store.Expenditure(s.ctx, 0)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal("roads", exp.Purpose)
		s.Equal("paving contract", detail)
	})

	s.Run("count and spent total advance", func() {
		count, err := s.store.ExpenditureCount(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(2), count)

		totals, err := s.store.Totals(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(70), totals.TotalSpent)
	})

	s.Run("out-of-range id reports not found", func() {
		_, _, ok, err := s.store.Expenditure(s.ctx, 99)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *MemoryStoreSuite) TestGovernance() {
	s.Run("initial government", func() {
		gov, err := s.store.Government(s.ctx)
		s.Require().NoError(err)
		s.Equal(testGov, gov)
	})

	s.Run("handoff replaces the wallet", func() {
		s.Require().NoError(s.store.SetGovernment(s.ctx, testAlice))
		gov, err := s.store.Government(s.ctx)
		s.Require().NoError(err)
		s.Equal(testAlice, gov)
	})

	s.Run("auditor membership defaults to false", func() {
		ok, err := s.store.IsAuditor(s.ctx, testBob)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("auditor set and unset are idempotent", func() {
		s.Require().NoError(s.store.SetAuditor(s.ctx, testBob, true))
		s.Require().NoError(s.store.SetAuditor(s.ctx, testBob, true))
		ok, err := s.store.IsAuditor(s.ctx, testBob)
		s.Require().NoError(err)
		s.True(ok)

		s.Require().NoError(s.store.SetAuditor(s.ctx, testBob, false))
		ok, err = s.store.IsAuditor(s.ctx, testBob)
		s.Require().NoError(err)
		s.False(ok)
	})
}

// Appends from many goroutines must never lose a payment or miscount
// totals; the store is the last line of defense under the service lock.
func (s *MemoryStoreSuite) TestConcurrentAppends() {
	const goroutines = 32
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.AppendTaxPayment(s.ctx, testAlice, models.TaxPayment{Amount: 1, Timestamp: 1, Status: models.PaymentProcessed})
			s.NoError(err)
		}()
	}
	wg.Wait()

	rec, err := s.store.CitizenRecord(s.ctx, testAlice)
	s.Require().NoError(err)
	s.Equal(uint64(goroutines), rec.PaymentCount)
	s.Equal(uint64(goroutines), rec.TotalPaid)

	totals, err := s.store.Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(goroutines), totals.TotalCollected)
}
