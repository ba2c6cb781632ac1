package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

func TestSale_Validate(t *testing.T) {
	tests := []struct {
		name      string
		sale      *domain.Sale
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_sale",
			sale: &domain.Sale{
				DrugID:        1,
				DoseSold:      30,
				UnitCostPrice: decimal.NewFromInt(2),
				SalesPrice:    decimal.NewFromInt(150),
			},
			wantError: false,
		},
		{
			name: "missing_drug_reference",
			sale: &domain.Sale{
				DoseSold:   30,
				SalesPrice: decimal.NewFromInt(150),
			},
			wantError: true,
			errorMsg:  "drugstoreId is required",
		},
		{
			name: "zero_dose_sold",
			sale: &domain.Sale{
				DrugID:     1,
				DoseSold:   0,
				SalesPrice: decimal.NewFromInt(150),
			},
			wantError: true,
			errorMsg:  "doseSold must be positive",
		},
		{
			name: "zero_sales_price",
			sale: &domain.Sale{
				DrugID:   1,
				DoseSold: 30,
			},
			wantError: true,
			errorMsg:  "salesPrice must be positive",
		},
		{
			name: "negative_unit_cost",
			sale: &domain.Sale{
				DrugID:        1,
				DoseSold:      30,
				UnitCostPrice: decimal.NewFromInt(-1),
				SalesPrice:    decimal.NewFromInt(150),
			},
			wantError: true,
			errorMsg:  "unitCostPrice cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sale.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSale_ComputeProfit(t *testing.T) {
	s := &domain.Sale{
		DrugID:        1,
		DoseSold:      30,
		UnitCostPrice: decimal.NewFromInt(2),
		SalesPrice:    decimal.NewFromInt(150),
	}

	s.ComputeProfit()

	// 150 total charged minus 2*30 cost.
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(90)), "got %s", s.Profit)
}

func TestSale_DoseDifference(t *testing.T) {
	s := &domain.Sale{DoseSold: 30}

	assert.EqualValues(t, 20, s.DoseDifference(50))
	assert.EqualValues(t, -10, s.DoseDifference(20))
	assert.EqualValues(t, 0, s.DoseDifference(30))
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"SUPERADMIN", "ADMIN", "STAFF"} {
		role, err := domain.ParseRole(valid)
		require.NoError(t, err)
		assert.EqualValues(t, valid, role)
	}

	_, err := domain.ParseRole("admin")
	require.Error(t, err)
}

func TestRole_Can(t *testing.T) {
	assert.True(t, domain.RoleSuperAdmin.Can(domain.CapManageStores))
	assert.False(t, domain.RoleAdmin.Can(domain.CapManageStores))
	assert.True(t, domain.RoleAdmin.Can(domain.CapManageDrugs))
	assert.False(t, domain.RoleStaff.Can(domain.CapManageDrugs))
	assert.True(t, domain.RoleStaff.Can(domain.CapRecordSales))
	assert.False(t, domain.Role("UNKNOWN").Can(domain.CapRecordSales))
}
