// internal/handlers/sales_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/internal/handlers"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
	"github.com/adesina-labs/pharmhub-be/test/mocks"
)

func newSalesHandler(t *testing.T) (*handlers.SalesHandler, *mocks.MockSaleLedger, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockSaleLedger(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	h := handlers.NewSalesHandler(ledger, cache, helpers.TestLogger())
	return h, ledger, cache
}

func TestSalesHandler_RecordSale(t *testing.T) {
	validBody := `{"drugstoreId":1,"doseSold":5,"unitCostPrice":"10.00","salesPrice":"75.00"}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful sale",
			body: validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, in ports.RecordSaleInput) (*domain.Sale, error) {
						assert.Equal(t, int64(1), in.DrugID)
						assert.Equal(t, int64(5), in.DoseSold)
						return &domain.Sale{
							ID:         42,
							DrugID:     in.DrugID,
							DoseSold:   in.DoseSold,
							SalesPrice: in.SalesPrice,
							Profit:     decimal.NewFromInt(25),
						}, nil
					})
				cache.EXPECT().DeletePattern(gomock.Any(), "dash:*").Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "insufficient stock",
			body: validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Insufficient stock for this sale",
		},
		{
			name: "unknown drug",
			body: validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrDrugNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Drug not found",
		},
		{
			name: "service validation failure",
			body: validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("validation failed: doseSold exceeds package size"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing drug id",
			body:           `{"doseSold":5,"unitCostPrice":"10.00","salesPrice":"75.00"}`,
			setupMocks:     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "drugstoreId is required",
		},
		{
			name:           "non-positive dose",
			body:           `{"drugstoreId":1,"doseSold":0,"unitCostPrice":"10.00","salesPrice":"75.00"}`,
			setupMocks:     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "doseSold must be positive",
		},
		{
			name:           "unknown field rejected",
			body:           `{"drugstoreId":1,"doseSold":5,"salesPrice":"75.00","bogus":true}`,
			setupMocks:     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "storage failure",
			body: validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ledger, cache := newSalesHandler(t)
			tt.setupMocks(ledger, cache)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.RecordSale(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, "Sale recorded successfully", resp["message"])
				sale, ok := resp["sale"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, float64(42), sale["id"])
			}
		})
	}
}

func TestSalesHandler_ListSales(t *testing.T) {
	t.Run("returns sales newest first", func(t *testing.T) {
		h, ledger, _ := newSalesHandler(t)

		ledger.EXPECT().ListSales(gomock.Any()).Return([]domain.SaleWithDrug{
			{Sale: domain.Sale{ID: 3}, DrugName: "Paracetamol"},
			{Sale: domain.Sale{ID: 1}, DrugName: "Amoxicillin"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
		rec := httptest.NewRecorder()

		h.ListSales(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Sales []domain.SaleWithDrug `json:"sales"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Sales, 2)
		assert.Equal(t, int64(3), resp.Sales[0].ID)
		assert.Equal(t, "Paracetamol", resp.Sales[0].DrugName)
	})

	t.Run("empty ledger yields empty array", func(t *testing.T) {
		h, ledger, _ := newSalesHandler(t)

		ledger.EXPECT().ListSales(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
		rec := httptest.NewRecorder()

		h.ListSales(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sales":[]}`, rec.Body.String())
	})
}

func TestSalesHandler_UpdateSale(t *testing.T) {
	validBody := `{"doseSold":3,"unitCostPrice":"10.00","salesPrice":"45.00"}`

	tests := []struct {
		name           string
		saleID         string
		body           string
		setupMocks     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "successful update",
			saleID: "42",
			body:   validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					UpdateSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, in ports.UpdateSaleInput) (*domain.Sale, error) {
						assert.Equal(t, int64(42), in.SaleID)
						assert.Nil(t, in.Closed)
						return &domain.Sale{ID: 42, DoseSold: in.DoseSold}, nil
					})
				cache.EXPECT().DeletePattern(gomock.Any(), "dash:*").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			saleID:         "abc",
			body:           validBody,
			setupMocks:     func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid sale ID format",
		},
		{
			name:   "sale not found",
			saleID: "42",
			body:   validBody,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					UpdateSale(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrSaleNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Sale not found",
		},
		{
			name:   "increase beyond remaining stock",
			saleID: "42",
			body:   `{"doseSold":500,"unitCostPrice":"10.00","salesPrice":"4500.00"}`,
			setupMocks: func(ledger *mocks.MockSaleLedger, cache *mocks.MockCacheRepository) {
				ledger.EXPECT().
					UpdateSale(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Insufficient stock for this sale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ledger, cache := newSalesHandler(t)
			tt.setupMocks(ledger, cache)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/sales/"+tt.saleID, bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.saleID)
			rec := httptest.NewRecorder()

			h.UpdateSale(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
		})
	}
}

func TestSalesHandler_DeleteSale(t *testing.T) {
	t.Run("successful delete restores stock", func(t *testing.T) {
		h, ledger, cache := newSalesHandler(t)

		ledger.EXPECT().DeleteSale(gomock.Any(), int64(42)).Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), "dash:*").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sales/42", nil)
		req.SetPathValue("id", "42")
		rec := httptest.NewRecorder()

		h.DeleteSale(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Sale deleted and stock restored", resp["message"])
		assert.Equal(t, float64(42), resp["saleId"])
	})

	t.Run("missing sale", func(t *testing.T) {
		h, ledger, _ := newSalesHandler(t)

		ledger.EXPECT().DeleteSale(gomock.Any(), int64(99)).Return(domain.ErrSaleNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sales/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		h.DeleteSale(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
