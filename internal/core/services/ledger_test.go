// internal/core/services/ledger_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
	"github.com/adesina-labs/pharmhub-be/test/mocks"
)

func TestSaleLedger_RecordSale(t *testing.T) {
	tests := []struct {
		name          string
		input         ports.RecordSaleInput
		setupMocks    func(*mocks.MockSaleRepository)
		check         func(*testing.T, *domain.Sale)
		expectedError error
		errorContains string
	}{
		{
			name: "successful_sale_computes_profit",
			input: ports.RecordSaleInput{
				DrugID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
						sale.ID = 42
						return nil
					})
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(42), sale.ID)
				assert.True(t, sale.Profit.Equal(decimal.NewFromInt(90)),
					"profit should be salesPrice - unitCostPrice*doseSold, got %s", sale.Profit)
			},
		},
		{
			name: "validation_fails_for_zero_dose",
			input: ports.RecordSaleInput{
				DrugID:        1,
				DoseSold:      0,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks:    func(m *mocks.MockSaleRepository) {},
			errorContains: "doseSold must be positive",
		},
		{
			name: "validation_fails_for_missing_drug_id",
			input: ports.RecordSaleInput{
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks:    func(m *mocks.MockSaleRepository) {},
			errorContains: "drugstoreId is required",
		},
		{
			name: "insufficient_stock_surfaces_sentinel",
			input: ports.RecordSaleInput{
				DrugID:        1,
				DoseSold:      500,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					Return(domain.ErrInsufficientStock)
			},
			expectedError: domain.ErrInsufficientStock,
		},
		{
			name: "unknown_drug_surfaces_sentinel",
			input: ports.RecordSaleInput{
				DrugID:        999,
				DoseSold:      1,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(45),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					Return(domain.ErrDrugNotFound)
			},
			expectedError: domain.ErrDrugNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			salesRepo := mocks.NewMockSaleRepository(ctrl)
			tt.setupMocks(salesRepo)

			ledger := services.NewSaleLedger(salesRepo, helpers.TestLogger())
			sale, err := ledger.RecordSale(context.Background(), tt.input)

			switch {
			case tt.expectedError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, sale)
			case tt.errorContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, sale)
			default:
				require.NoError(t, err)
				require.NotNil(t, sale)
				if tt.check != nil {
					tt.check(t, sale)
				}
			}
		})
	}
}

func TestSaleLedger_UpdateSale(t *testing.T) {
	closed := true

	tests := []struct {
		name          string
		input         ports.UpdateSaleInput
		setupMocks    func(*mocks.MockSaleRepository)
		check         func(*testing.T, *domain.Sale)
		expectedError error
		errorContains string
	}{
		{
			name: "dose_increase_shifts_stock_by_difference",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      50,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(2000),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				existing := helpers.CreateTestSale(func(s *domain.Sale) {
					s.DoseSold = 30
				})
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(existing, nil)
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(20)).
					Return(nil)
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(50), sale.DoseSold)
				assert.True(t, sale.Profit.Equal(decimal.NewFromInt(500)))
			},
		},
		{
			name: "dose_decrease_returns_stock",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      10,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(450),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				existing := helpers.CreateTestSale(func(s *domain.Sale) {
					s.DoseSold = 30
				})
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(existing, nil)
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(-20)).
					Return(nil)
			},
		},
		{
			name: "closed_flag_preserved_when_not_sent",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				existing := helpers.CreateTestSale(func(s *domain.Sale) {
					s.Closed = true
				})
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(existing, nil)
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(0)).
					Return(nil)
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.True(t, sale.Closed)
			},
		},
		{
			name: "closed_flag_updated_when_sent",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
				Closed:        &closed,
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(helpers.CreateTestSale(), nil)
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(0)).
					Return(nil)
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.True(t, sale.Closed)
			},
		},
		{
			name: "missing_sale_returns_not_found",
			input: ports.UpdateSaleInput{
				SaleID:        999,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					FindByID(gomock.Any(), int64(999)).
					Return(nil, nil)
			},
			expectedError: domain.ErrSaleNotFound,
		},
		{
			name: "insufficient_stock_on_increase",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      500,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(helpers.CreateTestSale(), nil)
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(498)).
					Return(domain.ErrInsufficientStock)
			},
			expectedError: domain.ErrInsufficientStock,
		},
		{
			name: "repository_lookup_error",
			input: ports.UpdateSaleInput{
				SaleID:        1,
				DoseSold:      2,
				UnitCostPrice: decimal.NewFromInt(30),
				SalesPrice:    decimal.NewFromInt(150),
			},
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(nil, errors.New("connection lost"))
			},
			errorContains: "failed to load sale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			salesRepo := mocks.NewMockSaleRepository(ctrl)
			tt.setupMocks(salesRepo)

			ledger := services.NewSaleLedger(salesRepo, helpers.TestLogger())
			sale, err := ledger.UpdateSale(context.Background(), tt.input)

			switch {
			case tt.expectedError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.errorContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				require.NoError(t, err)
				require.NotNil(t, sale)
				if tt.check != nil {
					tt.check(t, sale)
				}
			}
		})
	}
}

func TestSaleLedger_DeleteSale(t *testing.T) {
	tests := []struct {
		name          string
		saleID        int64
		setupMocks    func(*mocks.MockSaleRepository)
		expectedError error
	}{
		{
			name:   "successful_delete",
			saleID: 1,
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					Delete(gomock.Any(), int64(1)).
					Return(nil)
			},
		},
		{
			name:   "missing_sale",
			saleID: 999,
			setupMocks: func(m *mocks.MockSaleRepository) {
				m.EXPECT().
					Delete(gomock.Any(), int64(999)).
					Return(domain.ErrSaleNotFound)
			},
			expectedError: domain.ErrSaleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			salesRepo := mocks.NewMockSaleRepository(ctrl)
			tt.setupMocks(salesRepo)

			ledger := services.NewSaleLedger(salesRepo, helpers.TestLogger())
			err := ledger.DeleteSale(context.Background(), tt.saleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaleLedger_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesRepo := mocks.NewMockSaleRepository(ctrl)
	expected := []domain.SaleWithDrug{
		{Sale: *helpers.CreateTestSale(), DrugName: "Amoxicillin 500mg", DoseQuantity: 10},
	}
	salesRepo.EXPECT().
		FindAllWithDrug(gomock.Any()).
		Return(expected, nil)

	ledger := services.NewSaleLedger(salesRepo, helpers.TestLogger())
	sales, err := ledger.ListSales(context.Background())

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Amoxicillin 500mg", sales[0].DrugName)
}
