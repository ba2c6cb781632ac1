//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
)

type DrugRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	drugs  ports.DrugRepository
	ctx    context.Context
}

func (s *DrugRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.drugs = db.NewDrugRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *DrugRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *DrugRepositorySuite) seed(overrides ...func(*domain.Drug)) *domain.Drug {
	drug := helpers.CreateTestDrug(append([]func(*domain.Drug){func(d *domain.Drug) {
		d.ID = 0
	}}, overrides...)...)
	s.Require().NoError(s.drugs.Save(s.ctx, drug))
	return drug
}

func (s *DrugRepositorySuite) TestFindAll_NoFilters() {
	s.seed(func(d *domain.Drug) { d.Name = "Paracetamol 500mg" })
	s.seed(func(d *domain.Drug) { d.Name = "Ibuprofen 400mg" })
	s.seed(func(d *domain.Drug) { d.Name = "Vitamin C 100mg" })

	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{})
	s.NoError(err)
	s.Len(drugs, 3)
	s.Equal(int64(3), total)
}

func (s *DrugRepositorySuite) TestFindAll_SearchMatchesNameBrandType() {
	s.seed(func(d *domain.Drug) { d.Name = "Paracetamol 500mg"; d.Brand = "Emzor" })
	s.seed(func(d *domain.Drug) { d.Name = "Ibuprofen 400mg"; d.Brand = "Advil" })
	s.seed(func(d *domain.Drug) { d.Name = "Cough Syrup"; d.Type = "Advanced" })

	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{Search: "adv"})
	s.NoError(err)
	s.Len(drugs, 2)
	s.Equal(int64(2), total)
}

func (s *DrugRepositorySuite) TestFindAll_StatusFilter() {
	s.seed()
	s.seed(func(d *domain.Drug) {
		d.Name = "Insulin 10ml"
		d.RemainingQuantity = 0
		d.Status = domain.StatusOutOfStock
	})

	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{
		Status: domain.StatusOutOfStock,
	})
	s.NoError(err)
	s.Len(drugs, 1)
	s.Equal(int64(1), total)
	s.Equal("Insulin 10ml", drugs[0].Name)
}

func (s *DrugRepositorySuite) TestFindAll_ExpiringBefore() {
	soon := time.Now().AddDate(0, 0, 10)
	s.seed(func(d *domain.Drug) {
		d.Name = "Short dated"
		d.ExpireDate = time.Now().AddDate(0, 0, 5)
	})
	s.seed(func(d *domain.Drug) {
		d.Name = "Long dated"
		d.ExpireDate = time.Now().AddDate(1, 0, 0)
	})

	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{
		ExpiringBefore: &soon,
	})
	s.NoError(err)
	s.Len(drugs, 1)
	s.Equal(int64(1), total)
	s.Equal("Short dated", drugs[0].Name)
}

func (s *DrugRepositorySuite) TestFindAll_PaginationKeepsFullCount() {
	for i := 0; i < 5; i++ {
		s.seed()
	}

	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{
		Limit:  2,
		Offset: 2,
	})
	s.NoError(err)
	s.Len(drugs, 2)
	s.Equal(int64(5), total, "total must count all matches, not just the page")
}

func (s *DrugRepositorySuite) TestFindAll_SortByName() {
	s.seed(func(d *domain.Drug) { d.Name = "Zinc Oxide" })
	s.seed(func(d *domain.Drug) { d.Name = "Amoxicillin" })

	drugs, _, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{
		SortBy:    "name",
		SortOrder: "asc",
	})
	s.NoError(err)
	s.Require().Len(drugs, 2)
	s.Equal("Amoxicillin", drugs[0].Name)
	s.Equal("Zinc Oxide", drugs[1].Name)
}

func (s *DrugRepositorySuite) TestFindAll_EmptyCatalogue() {
	drugs, total, err := s.drugs.FindAll(s.ctx, ports.DrugQueryParams{})
	s.NoError(err)
	s.Empty(drugs)
	s.Zero(total)
}

func TestDrugRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DrugRepositorySuite))
}
