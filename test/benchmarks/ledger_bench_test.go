package benchmarks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
	"github.com/adesina-labs/pharmhub-be/internal/workers"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
)

func BenchmarkSaleLedger(b *testing.B) {
	testDB := helpers.SetupTestDB(&testing.T{})
	defer testDB.Database.Close()

	logger := helpers.TestLogger()
	drugRepo := db.NewDrugRepository(testDB.Database, logger)
	saleRepo := db.NewSaleRepository(testDB.Database, logger)
	ledger := services.NewSaleLedger(saleRepo, logger)
	drugService := services.NewDrugService(drugRepo, logger)
	ctx := context.Background()

	// Deep stock so the benchmark never trips the oversell guard
	drug := helpers.CreateTestDrug(func(d *domain.Drug) {
		d.ID = 0
		d.RemainingQuantity = 1 << 40
	})
	if err := drugRepo.Save(ctx, drug); err != nil {
		b.Fatalf("failed to seed drug: %v", err)
	}

	b.Run("RecordSale", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ledger.RecordSale(ctx, ports.RecordSaleInput{
				DrugID:        drug.ID,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(90),
			})
		}
	})

	b.Run("ListSales", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ledger.ListSales(ctx)
		}
	})

	b.Run("GetDrug", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = drugService.GetByID(ctx, drug.ID)
		}
	})

	b.Run("SearchDrugs", func(b *testing.B) {
		params := ports.DrugListParams{
			Search:   "Amoxicillin",
			Page:     1,
			PageSize: 50,
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = drugService.List(ctx, params)
		}
	})
}

func BenchmarkSalesWorkbook(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("rows_%d", size), func(b *testing.B) {
			sales := makeSales(size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = workers.BuildSalesWorkbook(sales)
			}
		})
	}
}

func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("Sale", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sale := &domain.Sale{
				DrugID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(90),
			}
			sale.ComputeProfit()
		}
	})

	b.Run("SaleWithDrugSlice", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = makeSales(100)
		}
	})
}

func makeSales(count int) []domain.SaleWithDrug {
	sales := make([]domain.SaleWithDrug, count)
	for i := range sales {
		sales[i] = domain.SaleWithDrug{
			Sale: domain.Sale{
				ID:            int64(i + 1),
				DrugID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(90),
				Profit:        decimal.NewFromInt(30),
				CreatedAt:     time.Now(),
			},
			DrugName:     fmt.Sprintf("Drug %d", i+1),
			DoseQuantity: 10,
		}
	}
	return sales
}
