package workers_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/workers"
)

func TestBuildSalesWorkbook(t *testing.T) {
	soldAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	sales := []domain.SaleWithDrug{
		{
			Sale: domain.Sale{
				ID:            7,
				DrugID:        1,
				DoseSold:      20,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(900),
				Profit:        decimal.NewFromInt(300),
				Closed:        true,
				CreatedAt:     soldAt,
			},
			DrugName:     "Amoxicillin 500mg",
			DoseQuantity: 10,
		},
		{
			Sale: domain.Sale{
				ID:            8,
				DrugID:        2,
				DoseSold:      5,
				UnitCostPrice: decimal.RequireFromString("1.50"),
				SalesPrice:    decimal.NewFromInt(15),
				Profit:        decimal.RequireFromString("7.50"),
				CreatedAt:     soldAt.Add(time.Hour),
			},
			DrugName:     "Vitamin C 100mg",
			DoseQuantity: 30,
		},
	}

	file := workers.BuildSalesWorkbook(sales)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Sales", sheet.Name)
	assert.Equal(t, 3, sheet.MaxRow)

	cell := func(row, col int) string {
		c, err := sheet.Cell(row, col)
		require.NoError(t, err)
		return c.Value
	}

	assert.Equal(t, "Sale ID", cell(0, 0))
	assert.Equal(t, "Drug", cell(0, 1))
	assert.Equal(t, "Profit", cell(0, 5))

	assert.Equal(t, "7", cell(1, 0))
	assert.Equal(t, "Amoxicillin 500mg", cell(1, 1))
	assert.Equal(t, "20", cell(1, 2))
	assert.Equal(t, "30.00", cell(1, 3))
	assert.Equal(t, "900.00", cell(1, 4))
	assert.Equal(t, "300.00", cell(1, 5))
	assert.Equal(t, "Yes", cell(1, 6))
	assert.Equal(t, "2026-03-14 09:30:00", cell(1, 7))

	assert.Equal(t, "Vitamin C 100mg", cell(2, 1))
	assert.Equal(t, "7.50", cell(2, 5))
	assert.Equal(t, "No", cell(2, 6))
}

func TestBuildSalesWorkbookEmpty(t *testing.T) {
	file := workers.BuildSalesWorkbook(nil)
	require.Len(t, file.Sheets, 1)
	assert.Equal(t, 1, file.Sheets[0].MaxRow)
}
