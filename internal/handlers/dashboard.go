// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	redis_a "github.com/adesina-labs/pharmhub-be/internal/adapters/redis_adapter"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// DashboardHandler serves the cached store overview
type DashboardHandler struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(database *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// GetOverview handles GET /api/v1/dashboard
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "overview")
	var overview DashboardOverview

	err := h.cache.GetOrSet(ctx, cacheKey, &overview, func() (interface{}, error) {
		return h.loadOverview(ctx)
	}, 5*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, overview)
}

func (h *DashboardHandler) loadOverview(ctx context.Context) (*DashboardOverview, error) {
	overview := &DashboardOverview{
		Timestamp: time.Now(),
	}

	err := h.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM drugs),
			(SELECT COUNT(*) FROM drugs WHERE status = 'OUT_OF_STOCK'),
			(SELECT COUNT(*) FROM drugs WHERE status = 'EXPIRED'),
			(SELECT COUNT(*) FROM sales),
			(SELECT COALESCE(SUM(sales_price), 0) FROM sales),
			(SELECT COALESCE(SUM(profit), 0) FROM sales),
			(SELECT COALESCE(SUM(value), 0) FROM expenses)`).Scan(
		&overview.Summary.TotalDrugs,
		&overview.Summary.OutOfStock,
		&overview.Summary.Expired,
		&overview.Summary.TotalSales,
		&overview.Summary.TotalRevenue,
		&overview.Summary.TotalProfit,
		&overview.Summary.TotalExpenses,
	)
	if err != nil {
		return nil, err
	}

	overview.Summary.NetProfit = overview.Summary.TotalProfit.Sub(overview.Summary.TotalExpenses)

	// Drugs running low: available stock under one full package.
	lowRows, err := h.db.Query(ctx, `
		SELECT id, name, remaining_quantity, dose_quantity
		FROM drugs
		WHERE status = 'AVAILABLE' AND remaining_quantity < dose_quantity
		ORDER BY remaining_quantity ASC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer lowRows.Close()

	for lowRows.Next() {
		var item LowStockItem
		if err := lowRows.Scan(&item.DrugID, &item.Name, &item.RemainingQuantity, &item.DoseQuantity); err != nil {
			return nil, err
		}
		overview.LowStock = append(overview.LowStock, item)
	}

	expRows, err := h.db.Query(ctx, `
		SELECT id, name, expire_date, remaining_quantity
		FROM drugs
		WHERE status != 'EXPIRED'
		  AND expire_date > '0001-01-01'
		  AND expire_date <= NOW() + INTERVAL '30 days'
		ORDER BY expire_date ASC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer expRows.Close()

	for expRows.Next() {
		var item ExpiringItem
		if err := expRows.Scan(&item.DrugID, &item.Name, &item.ExpireDate, &item.RemainingQuantity); err != nil {
			return nil, err
		}
		overview.ExpiringSoon = append(overview.ExpiringSoon, item)
	}

	return overview, nil
}

// Type definitions

type DashboardOverview struct {
	Summary      DashboardSummary `json:"summary"`
	LowStock     []LowStockItem   `json:"lowStock"`
	ExpiringSoon []ExpiringItem   `json:"expiringSoon"`
	Timestamp    time.Time        `json:"timestamp"`
}

type DashboardSummary struct {
	TotalDrugs    int64           `json:"totalDrugs"`
	OutOfStock    int64           `json:"outOfStock"`
	Expired       int64           `json:"expired"`
	TotalSales    int64           `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

type LowStockItem struct {
	DrugID            int64  `json:"drugId"`
	Name              string `json:"name"`
	RemainingQuantity int64  `json:"remainingQuantity"`
	DoseQuantity      int64  `json:"doseQuantity"`
}

type ExpiringItem struct {
	DrugID            int64     `json:"drugId"`
	Name              string    `json:"name"`
	ExpireDate        time.Time `json:"expireDate"`
	RemainingQuantity int64     `json:"remainingQuantity"`
}

// Helper methods

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
