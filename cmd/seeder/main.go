package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
	"golang.org/x/crypto/bcrypt"
)

// SeedDrug is one row of the drug catalogue to load.
type SeedDrug struct {
	Name              string
	Brand             string
	Type              string
	StockType         string
	DoseQuantity      int64
	Amount            int64
	UnitCostPrice     decimal.Decimal
	PurchasePrice     decimal.Decimal
	SalesPrice        decimal.Decimal
	RemainingQuantity int64
	ManufacturedDate  time.Time
	ExpireDate        time.Time
	Location          string
}

// SeedUser is one account to create.
type SeedUser struct {
	Email    string
	Password string
	Role     string
}

func main() {
	var (
		drugsFile = flag.String("drugs", "./drugs.xlsx", "Excel file with the drug catalogue")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun    = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force     = flag.Bool("force", false, "Seed even when tables already hold data")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "pharmhub"),
		getEnv("DB_PASSWORD", "pharmhub_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "pharmhub"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	db, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	seeder := &Seeder{db: db, logger: logger, dryRun: *dryRun, force: *force}

	if err := seeder.SeedAccounts(ctx); err != nil {
		logger.Error("Failed to seed accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	drugs, err := loadDrugCatalogue(*drugsFile, logger)
	if err != nil {
		logger.Error("Failed to load drug catalogue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inserted, err := seeder.SeedDrugs(ctx, drugs)
	if err != nil {
		logger.Error("Failed to seed drugs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seeder.SeedExpenses(ctx); err != nil {
		logger.Error("Failed to seed expenses", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Seed operation completed",
		slog.Int("drugs_inserted", inserted),
		slog.Bool("dry_run", *dryRun))

	if *dryRun {
		fmt.Println("[DRY RUN] No changes were made to the database")
	}
}

// Seeder loads demo accounts and catalogue data.
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	dryRun bool
	force  bool
}

// SeedAccounts creates the demo customer, its users, stores, and staff.
// Existing rows are left alone.
func (s *Seeder) SeedAccounts(ctx context.Context) error {
	if s.dryRun {
		s.logger.Info("Would seed demo customer, users, stores, and staff")
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var customerID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM customers WHERE customer_name = $1`, "PharmHub Demo").Scan(&customerID)
	if err == pgx.ErrNoRows {
		err = tx.QueryRow(ctx, `
			INSERT INTO customers (customer_name, store_name, location, phone1, phone2)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			"PharmHub Demo", "Main Branch", "Lagos", "+2348010000001", "").Scan(&customerID)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure demo customer: %w", err)
	}

	bcryptCost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	users := []SeedUser{
		{Email: "superadmin@pharmhub.app", Password: getEnv("SEED_SUPERADMIN_PASSWORD", "superadmin123"), Role: "SUPERADMIN"},
		{Email: "admin@pharmhub.app", Password: getEnv("SEED_ADMIN_PASSWORD", "admin123"), Role: "ADMIN"},
		{Email: "staff@pharmhub.app", Password: getEnv("SEED_STAFF_PASSWORD", "staff123"), Role: "STAFF"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}

		var customerRef interface{}
		if u.Role != "SUPERADMIN" {
			customerRef = customerID
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO users (email, password_hash, role, customer_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING`,
			u.Email, string(hash), u.Role, customerRef); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}

	stores := []struct{ name, location string }{
		{"Main Branch", "Lagos"},
		{"Annex", "Ibadan"},
	}
	storeIDs := make(map[string]int64, len(stores))
	for _, st := range stores {
		var storeID int64
		err = tx.QueryRow(ctx, `
			SELECT id FROM stores WHERE store_name = $1 AND customer_id = $2`,
			st.name, customerID).Scan(&storeID)
		if err == pgx.ErrNoRows {
			err = tx.QueryRow(ctx, `
				INSERT INTO stores (store_name, location, customer_id)
				VALUES ($1, $2, $3)
				RETURNING id`,
				st.name, st.location, customerID).Scan(&storeID)
		}
		if err != nil {
			return fmt.Errorf("failed to ensure store %s: %w", st.name, err)
		}
		storeIDs[st.name] = storeID
	}

	staff := []struct{ name, email, phone, location, store string }{
		{"Adaeze Okafor", "adaeze@pharmhub.app", "+2348010000002", "Lagos", "Main Branch"},
		{"Tunde Bakare", "tunde@pharmhub.app", "+2348010000003", "Ibadan", "Annex"},
	}
	for _, m := range staff {
		if _, err := tx.Exec(ctx, `
			INSERT INTO staff (staff_name, email, phone, location, store_id)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (SELECT 1 FROM staff WHERE staff_name = $1)`,
			m.name, m.email, m.phone, m.location, storeIDs[m.store]); err != nil {
			return fmt.Errorf("failed to seed staff %s: %w", m.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit accounts: %w", err)
	}

	s.logger.Info("Seeded demo accounts",
		slog.Int64("customer_id", customerID),
		slog.Int("users", len(users)),
		slog.Int("stores", len(stores)))
	return nil
}

// SeedDrugs loads the catalogue in one batch. Unless -force is set, a
// non-empty drugs table skips the load entirely.
func (s *Seeder) SeedDrugs(ctx context.Context, drugs []SeedDrug) (int, error) {
	if len(drugs) == 0 {
		return 0, nil
	}

	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count drugs: %w", err)
	}
	if count > 0 && !s.force {
		s.logger.Info("Drugs table already populated, skipping",
			slog.Int64("existing", count))
		return 0, nil
	}

	if s.dryRun {
		s.logger.Info("Would insert drugs", slog.Int("count", len(drugs)))
		return len(drugs), nil
	}

	var storeID int64
	_ = s.db.QueryRow(ctx, `SELECT id FROM stores WHERE store_name = $1`, "Main Branch").Scan(&storeID)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, d := range drugs {
		batch.Queue(`
			INSERT INTO drugs (
				name, brand, type, stock_type, dose_quantity, amount,
				unit_cost_price, purchase_price, sales_price, remaining_quantity,
				manufactured_date, expire_date, location, store_id, status
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'AVAILABLE'
			)`,
			d.Name, d.Brand, d.Type, d.StockType, d.DoseQuantity, d.Amount,
			d.UnitCostPrice, d.PurchasePrice, d.SalesPrice, d.RemainingQuantity,
			d.ManufacturedDate, d.ExpireDate, d.Location, storeID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range drugs {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert drug: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit drugs: %w", err)
	}

	s.logger.Info("Seeded drug catalogue", slog.Int("count", len(drugs)))
	return len(drugs), nil
}

// SeedExpenses adds a couple of bookkeeping rows so the dashboard has data.
func (s *Seeder) SeedExpenses(ctx context.Context) error {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count expenses: %w", err)
	}
	if count > 0 && !s.force {
		return nil
	}

	if s.dryRun {
		s.logger.Info("Would seed sample expenses")
		return nil
	}

	expenses := []struct {
		name  string
		value string
	}{
		{"Generator fuel", "4500.00"},
		{"Store rent", "120000.00"},
	}

	for _, e := range expenses {
		value, err := decimal.NewFromString(e.value)
		if err != nil {
			return fmt.Errorf("invalid expense value %q: %w", e.value, err)
		}
		if _, err := s.db.Exec(ctx, `
			INSERT INTO expenses (exp, value) VALUES ($1, $2)`,
			e.name, value); err != nil {
			return fmt.Errorf("failed to seed expense %s: %w", e.name, err)
		}
	}

	s.logger.Info("Seeded sample expenses", slog.Int("count", len(expenses)))
	return nil
}

// loadDrugCatalogue reads the catalogue from an Excel file when present,
// falling back to a small built-in set. Expected columns: name, brand,
// type, stock type, dose quantity, amount, unit cost, purchase price,
// sales price, remaining quantity, manufactured date, expire date,
// location.
func loadDrugCatalogue(path string, logger *slog.Logger) ([]SeedDrug, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Info("No catalogue file found, using built-in drugs",
			slog.String("path", path))
		return builtinDrugs(), nil
	}

	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in catalogue file")
	}
	sheet := file.Sheets[0]

	var drugs []SeedDrug
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}
		getInt := func(i int) int64 {
			n, _ := strconv.ParseInt(get(i), 10, 64)
			return n
		}
		getDecimal := func(i int) decimal.Decimal {
			d, _ := decimal.NewFromString(strings.TrimPrefix(get(i), "$"))
			return d
		}
		getDate := func(i int) time.Time {
			t, _ := time.Parse("2006-01-02", get(i))
			return t
		}

		name := get(0)
		if name == "" {
			return nil
		}

		doseQuantity := getInt(4)
		if doseQuantity <= 0 {
			doseQuantity = 1
		}

		drugs = append(drugs, SeedDrug{
			Name:              name,
			Brand:             get(1),
			Type:              get(2),
			StockType:         normalizeStockType(get(3)),
			DoseQuantity:      doseQuantity,
			Amount:            getInt(5),
			UnitCostPrice:     getDecimal(6),
			PurchasePrice:     getDecimal(7),
			SalesPrice:        getDecimal(8),
			RemainingQuantity: getInt(9),
			ManufacturedDate:  getDate(10),
			ExpireDate:        getDate(11),
			Location:          get(12),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	logger.Info("Loaded drug catalogue", slog.Int("count", len(drugs)))
	return drugs, nil
}

func normalizeStockType(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TABLET", "TABLETS":
		return "tablet"
	case "CAPSULE", "CAPSULES":
		return "capsule"
	case "SYRUP", "SYRUPS":
		return "syrup"
	case "INJECTION", "INJECTIONS":
		return "injection"
	case "CREAM", "CREAMS":
		return "cream"
	case "DROPS":
		return "drops"
	default:
		return "other"
	}
}

func builtinDrugs() []SeedDrug {
	mk := func(name, brand, typ, stockType string, dose, amount, remaining int64, cost, purchase, sales string, monthsToExpiry int) SeedDrug {
		expire := time.Now().AddDate(0, monthsToExpiry, 0)
		manufactured := time.Now().AddDate(0, -6, 0)
		return SeedDrug{
			Name:              name,
			Brand:             brand,
			Type:              typ,
			StockType:         stockType,
			DoseQuantity:      dose,
			Amount:            amount,
			UnitCostPrice:     decimal.RequireFromString(cost),
			PurchasePrice:     decimal.RequireFromString(purchase),
			SalesPrice:        decimal.RequireFromString(sales),
			RemainingQuantity: remaining,
			ManufacturedDate:  manufactured,
			ExpireDate:        expire,
			Location:          "Shelf A",
		}
	}

	return []SeedDrug{
		mk("Paracetamol 500mg", "Emzor", "Analgesic", "tablet", 24, 50, 1200, "2.00", "80.00", "5.00", 18),
		mk("Amoxicillin 250mg", "GSK", "Antibiotic", "capsule", 21, 30, 630, "12.00", "300.00", "25.00", 12),
		mk("Vitamin C 100mg", "Emvit", "Supplement", "tablet", 30, 40, 1200, "1.50", "50.00", "3.00", 24),
		mk("Cough Syrup 100ml", "Benylin", "Antitussive", "syrup", 1, 25, 25, "450.00", "450.00", "700.00", 9),
		mk("Ibuprofen 400mg", "Advil", "NSAID", "tablet", 20, 35, 700, "8.00", "180.00", "15.00", 15),
		mk("Insulin 10ml", "Novo Nordisk", "Antidiabetic", "injection", 1, 12, 12, "3200.00", "3200.00", "4500.00", 6),
		mk("Artemether 80mg", "Coartem", "Antimalarial", "tablet", 6, 60, 360, "95.00", "560.00", "150.00", 10),
		mk("Zinc Oxide Cream", "Sudocrem", "Dermatological", "cream", 1, 18, 18, "850.00", "850.00", "1200.00", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
