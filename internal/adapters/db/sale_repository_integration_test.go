//go:build integration
// +build integration

package db_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
)

type SaleRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	sales  ports.SaleRepository
	drugs  ports.DrugRepository
	ctx    context.Context
}

func (s *SaleRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.sales = db.NewSaleRepository(s.testDB.Database, helpers.TestLogger())
	s.drugs = db.NewDrugRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *SaleRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

// seedDrug inserts a drug with the given remaining quantity and returns its ID.
func (s *SaleRepositorySuite) seedDrug(remaining int64) int64 {
	drug := helpers.CreateTestDrug(func(d *domain.Drug) {
		d.ID = 0
		d.RemainingQuantity = remaining
	})
	s.Require().NoError(s.drugs.Save(s.ctx, drug))
	return drug.ID
}

func (s *SaleRepositorySuite) remaining(drugID int64) int64 {
	drug, err := s.drugs.FindByID(s.ctx, drugID)
	s.Require().NoError(err)
	s.Require().NotNil(drug)
	return drug.RemainingQuantity
}

func (s *SaleRepositorySuite) TestRecord_DecrementsStock() {
	drugID := s.seedDrug(100)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 30
	})

	s.NoError(s.sales.Record(s.ctx, sale))
	s.NotZero(sale.ID)
	s.Equal(int64(70), s.remaining(drugID))
}

func (s *SaleRepositorySuite) TestRecord_InsufficientStockLeavesBalance() {
	drugID := s.seedDrug(70)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 80
	})

	err := s.sales.Record(s.ctx, sale)
	s.ErrorIs(err, domain.ErrInsufficientStock)
	s.Equal(int64(70), s.remaining(drugID))

	count, err := s.sales.Count(s.ctx)
	s.NoError(err)
	s.Zero(count, "failed sale must not leave a row behind")
}

func (s *SaleRepositorySuite) TestRecord_UnknownDrug() {
	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = 999999
	})

	s.ErrorIs(s.sales.Record(s.ctx, sale), domain.ErrDrugNotFound)
}

func (s *SaleRepositorySuite) TestUpdate_ShiftsStockByDifference() {
	drugID := s.seedDrug(100)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 30
	})
	s.Require().NoError(s.sales.Record(s.ctx, sale))
	s.Require().Equal(int64(70), s.remaining(drugID))

	sale.DoseSold = 50
	s.NoError(s.sales.Update(s.ctx, sale, 20))
	s.Equal(int64(50), s.remaining(drugID))

	sale.DoseSold = 10
	s.NoError(s.sales.Update(s.ctx, sale, -40))
	s.Equal(int64(90), s.remaining(drugID))
}

func (s *SaleRepositorySuite) TestUpdate_GuardRejectsOverdraw() {
	drugID := s.seedDrug(10)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 5
	})
	s.Require().NoError(s.sales.Record(s.ctx, sale))

	sale.DoseSold = 50
	err := s.sales.Update(s.ctx, sale, 45)
	s.ErrorIs(err, domain.ErrInsufficientStock)
	s.Equal(int64(5), s.remaining(drugID))

	// The sale row must be untouched too.
	stored, err := s.sales.FindByID(s.ctx, sale.ID)
	s.NoError(err)
	s.Equal(int64(5), stored.DoseSold)
}

func (s *SaleRepositorySuite) TestDelete_RestoresStock() {
	drugID := s.seedDrug(100)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 30
	})
	s.Require().NoError(s.sales.Record(s.ctx, sale))
	s.Require().Equal(int64(70), s.remaining(drugID))

	s.NoError(s.sales.Delete(s.ctx, sale.ID))
	s.Equal(int64(100), s.remaining(drugID))

	stored, err := s.sales.FindByID(s.ctx, sale.ID)
	s.NoError(err)
	s.Nil(stored)
}

func (s *SaleRepositorySuite) TestDelete_MissingSale() {
	s.ErrorIs(s.sales.Delete(s.ctx, 999999), domain.ErrSaleNotFound)
}

// Concurrent sales of the same drug must never drive stock negative.
func (s *SaleRepositorySuite) TestRecord_ConcurrentSalesRespectGuard() {
	drugID := s.seedDrug(50)

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sale := helpers.CreateTestSale(func(sl *domain.Sale) {
				sl.ID = 0
				sl.DrugID = drugID
				sl.DoseSold = 10
			})
			errs[i] = s.sales.Record(s.ctx, sale)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.ErrorIs(err, domain.ErrInsufficientStock)
		}
	}

	s.Equal(5, succeeded)
	s.Equal(int64(0), s.remaining(drugID))
}

func (s *SaleRepositorySuite) TestFindAllWithDrug() {
	drugID := s.seedDrug(100)

	sale := helpers.CreateTestSale(func(sl *domain.Sale) {
		sl.ID = 0
		sl.DrugID = drugID
		sl.DoseSold = 2
		sl.Profit = decimal.NewFromInt(90)
	})
	s.Require().NoError(s.sales.Record(s.ctx, sale))

	sales, err := s.sales.FindAllWithDrug(s.ctx)
	s.NoError(err)
	s.Require().Len(sales, 1)
	s.Equal("Amoxicillin 500mg", sales[0].DrugName)
	s.Equal(int64(10), sales[0].DoseQuantity)
	s.True(sales[0].Profit.Equal(decimal.NewFromInt(90)))
}

func TestSaleRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(SaleRepositorySuite))
}
