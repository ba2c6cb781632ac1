//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	redis_a "github.com/adesina-labs/pharmhub-be/internal/adapters/redis_adapter"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
	"github.com/adesina-labs/pharmhub-be/internal/handlers"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
)

type SaleLedgerE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *SaleLedgerE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *SaleLedgerE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *SaleLedgerE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *SaleLedgerE2ESuite) TestCompleteSaleWorkflow() {
	// 1. Stock a drug: 10 packs of 10 doses gives 100 doses on hand
	drugID := s.createDrug(map[string]interface{}{
		"name":          "Amoxicillin 500mg",
		"brand":         "GSK",
		"type":          "Antibiotic",
		"stockType":     "capsule",
		"doseQuantity":  10,
		"amount":        10,
		"unitCostPrice": "30",
		"salesPrice":    "45",
	})

	drug := s.getDrug(drugID)
	s.Equal(float64(100), drug["remainingQuantity"])

	resp := s.makeRequest("GET", "/drugs?search=amox", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var catalogue map[string]interface{}
	s.decodeResponse(resp, &catalogue)
	s.Equal(float64(1), catalogue["totalCount"])
	s.Len(catalogue["drugs"].([]interface{}), 1)

	// 2. Record a sale of 20 doses
	resp = s.makeRequest("POST", "/sales", map[string]interface{}{
		"drugstoreId":   drugID,
		"doseSold":      20,
		"unitCostPrice": "30",
		"salesPrice":    "900",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	sale := created["sale"].(map[string]interface{})
	saleID := int64(sale["id"].(float64))
	s.True(decimal.RequireFromString(fmt.Sprint(sale["profit"])).Equal(decimal.NewFromInt(300)))

	drug = s.getDrug(drugID)
	s.Equal(float64(80), drug["remainingQuantity"])

	// 3. Oversized sale is rejected and stock untouched
	resp = s.makeRequest("POST", "/sales", map[string]interface{}{
		"drugstoreId":   drugID,
		"doseSold":      1000,
		"unitCostPrice": "30",
		"salesPrice":    "45000",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	drug = s.getDrug(drugID)
	s.Equal(float64(80), drug["remainingQuantity"])

	// 4. Listing joins drug display fields
	resp = s.makeRequest("GET", "/sales", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var list map[string]interface{}
	s.decodeResponse(resp, &list)
	sales := list["sales"].([]interface{})
	s.Len(sales, 1)
	s.Equal("Amoxicillin 500mg", sales[0].(map[string]interface{})["drugName"])

	// 5. Shrinking the sale returns the dose difference to stock
	resp = s.makeRequest("PUT", fmt.Sprintf("/sales/%d", saleID), map[string]interface{}{
		"doseSold":      10,
		"unitCostPrice": "30",
		"salesPrice":    "450",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	drug = s.getDrug(drugID)
	s.Equal(float64(90), drug["remainingQuantity"])

	// 6. Deleting the sale restores the rest
	resp = s.makeRequest("DELETE", fmt.Sprintf("/sales/%d", saleID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	drug = s.getDrug(drugID)
	s.Equal(float64(100), drug["remainingQuantity"])

	resp = s.makeRequest("GET", "/sales", nil)
	s.decodeResponse(resp, &list)
	s.Empty(list["sales"])
}

func (s *SaleLedgerE2ESuite) TestConcurrentSalesNeverOversell() {
	drugID := s.createDrug(map[string]interface{}{
		"name":          "Paracetamol 500mg",
		"stockType":     "tablet",
		"doseQuantity":  10,
		"amount":        10,
		"unitCostPrice": "2",
		"salesPrice":    "5",
	})

	// 100 doses on hand, ten concurrent sales of 20 each: exactly five fit
	var wg sync.WaitGroup
	results := make(chan int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.makeRequest("POST", "/sales", map[string]interface{}{
				"drugstoreId":   drugID,
				"doseSold":      20,
				"unitCostPrice": "2",
				"salesPrice":    "100",
			})
			resp.Body.Close()
			results <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(results)

	accepted, rejected := 0, 0
	for code := range results {
		switch code {
		case http.StatusCreated:
			accepted++
		case http.StatusBadRequest:
			rejected++
		}
	}
	s.Equal(5, accepted)
	s.Equal(5, rejected)

	drug := s.getDrug(drugID)
	s.Equal(float64(0), drug["remainingQuantity"])
}

func (s *SaleLedgerE2ESuite) TestSalesExcelExport() {
	drugID := s.createDrug(map[string]interface{}{
		"name":          "Ibuprofen 400mg",
		"stockType":     "tablet",
		"doseQuantity":  20,
		"amount":        5,
		"unitCostPrice": "8",
		"salesPrice":    "15",
	})

	resp := s.makeRequest("POST", "/sales", map[string]interface{}{
		"drugstoreId":   drugID,
		"doseSold":      4,
		"unitCostPrice": "8",
		"salesPrice":    "60",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/export/sales.xlsx", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	s.Contains(resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	s.NoError(err)
	s.NotEmpty(body)
}

func (s *SaleLedgerE2ESuite) TestDashboardOverview() {
	drugID := s.createDrug(map[string]interface{}{
		"name":          "Vitamin C 100mg",
		"stockType":     "tablet",
		"doseQuantity":  30,
		"amount":        2,
		"unitCostPrice": "1.5",
		"salesPrice":    "3",
	})

	resp := s.makeRequest("POST", "/sales", map[string]interface{}{
		"drugstoreId":   drugID,
		"doseSold":      5,
		"unitCostPrice": "1.5",
		"salesPrice":    "15",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/dashboard", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var dashboard map[string]interface{}
	s.decodeResponse(resp, &dashboard)
	s.Contains(dashboard, "summary")

	summary := dashboard["summary"].(map[string]interface{})
	s.Equal(float64(1), summary["totalDrugs"])
	s.Equal(float64(1), summary["totalSales"])
	s.True(decimal.RequireFromString(fmt.Sprint(summary["totalRevenue"])).Equal(decimal.NewFromInt(15)))
}

// Helper methods

func (s *SaleLedgerE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	saleRepo := db.NewSaleRepository(s.testDB.Database, logger)
	drugRepo := db.NewDrugRepository(s.testDB.Database, logger)

	saleLedger := services.NewSaleLedger(saleRepo, logger)
	drugService := services.NewDrugService(drugRepo, logger)
	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)

	salesHandler := handlers.NewSalesHandler(saleLedger, cache, logger)
	drugsHandler := handlers.NewDrugsHandler(drugService, logger)
	dashboardHandler := handlers.NewDashboardHandler(s.testDB.Database, cache, logger)
	exportHandler := handlers.NewExportHandler(saleLedger, s.testDB.Database, nil, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/drugs", drugsHandler.CreateDrug)
	mux.HandleFunc("GET /api/v1/drugs", drugsHandler.ListDrugs)
	mux.HandleFunc("GET /api/v1/drugs/{id}", drugsHandler.GetDrug)
	mux.HandleFunc("PUT /api/v1/drugs/{id}", drugsHandler.UpdateDrug)
	mux.HandleFunc("DELETE /api/v1/drugs/{id}", drugsHandler.DeleteDrug)
	mux.HandleFunc("POST /api/v1/sales", salesHandler.RecordSale)
	mux.HandleFunc("GET /api/v1/sales", salesHandler.ListSales)
	mux.HandleFunc("PUT /api/v1/sales/{id}", salesHandler.UpdateSale)
	mux.HandleFunc("DELETE /api/v1/sales/{id}", salesHandler.DeleteSale)
	mux.HandleFunc("GET /api/v1/dashboard", dashboardHandler.GetOverview)
	mux.HandleFunc("GET /api/v1/export/sales.xlsx", exportHandler.ExportSalesExcel)

	return httptest.NewServer(mux)
}

func (s *SaleLedgerE2ESuite) createDrug(body map[string]interface{}) int64 {
	resp := s.makeRequest("POST", "/drugs", body)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	drug := created["drug"].(map[string]interface{})
	return int64(drug["id"].(float64))
}

func (s *SaleLedgerE2ESuite) getDrug(id int64) map[string]interface{} {
	resp := s.makeRequest("GET", fmt.Sprintf("/drugs/%d", id), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var drug map[string]interface{}
	s.decodeResponse(resp, &drug)
	return drug
}

func (s *SaleLedgerE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *SaleLedgerE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestSaleLedgerE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(SaleLedgerE2ESuite))
}
