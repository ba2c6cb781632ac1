// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/db"
	redis_a "github.com/adesina-labs/pharmhub-be/internal/adapters/redis_adapter"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
	"github.com/adesina-labs/pharmhub-be/internal/handlers"
	"github.com/adesina-labs/pharmhub-be/internal/handlers/middleware"
	"github.com/adesina-labs/pharmhub-be/internal/pkg/config"
	"github.com/adesina-labs/pharmhub-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	log := logger.SetupLogger("debug", "json")
	slogger := log.Logger

	slogger.Info("starting pharmacy retail backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	log = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = log.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, log)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	saleLedger     *services.SaleLedger
	drugService    *services.DrugService
	authService    *services.AuthService
	expenseService *services.ExpenseService

	salesHandler     *handlers.SalesHandler
	drugsHandler     *handlers.DrugsHandler
	authHandler      *handlers.AuthHandler
	storesHandler    *handlers.StoresHandler
	staffHandler     *handlers.StaffHandler
	expensesHandler  *handlers.ExpensesHandler
	dashboardHandler *handlers.DashboardHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	slogger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	saleRepo := db.NewSaleRepository(database, slogger)
	drugRepo := db.NewDrugRepository(database, slogger)
	userRepo := db.NewUserRepository(database, slogger)
	storeRepo := db.NewStoreRepository(database, slogger)
	staffRepo := db.NewStaffRepository(database, slogger)
	expenseRepo := db.NewExpenseRepository(database, slogger)

	// Services
	deps.saleLedger = services.NewSaleLedger(saleRepo, slogger)
	deps.drugService = services.NewDrugService(drugRepo, slogger)
	deps.authService = services.NewAuthService(
		userRepo,
		storeRepo,
		[]byte(cfg.Security.JWTSecret),
		cfg.Security.JWTExpiration,
		cfg.Security.BcryptCost,
		slogger,
	)
	deps.expenseService = services.NewExpenseService(expenseRepo, slogger)

	// Handlers
	deps.salesHandler = handlers.NewSalesHandler(deps.saleLedger, deps.redisCache, slogger)
	deps.drugsHandler = handlers.NewDrugsHandler(deps.drugService, slogger)
	deps.authHandler = handlers.NewAuthHandler(deps.authService, slogger)
	deps.storesHandler = handlers.NewStoresHandler(storeRepo, slogger)
	deps.staffHandler = handlers.NewStaffHandler(staffRepo, slogger)
	deps.expensesHandler = handlers.NewExpensesHandler(deps.expenseService, slogger)
	deps.dashboardHandler = handlers.NewDashboardHandler(database, deps.redisCache, slogger)
	deps.exportHandler = handlers.NewExportHandler(deps.saleLedger, database, deps.asynqClient, slogger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		deps.asynqInspector,
		cfg,
		slogger,
	)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, log *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(log)(handler)
		handler = middleware.Recovery(log.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, log.Logger, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, slogger *slog.Logger, cfg *config.Config) {
	apiV1 := "/api/v1"

	authenticate := middleware.Authenticate([]byte(cfg.Security.JWTSecret), slogger)

	// secured wraps a handler with authentication and optional capability checks.
	secured := func(h http.HandlerFunc, caps ...domain.Capability) http.Handler {
		var handler http.Handler = h
		for i := len(caps) - 1; i >= 0; i-- {
			handler = middleware.RequireCapability(caps[i])(handler)
		}
		return authenticate(handler)
	}

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Auth endpoints
	mux.HandleFunc("POST "+apiV1+"/auth/signup", deps.authHandler.SignUp)
	mux.HandleFunc("POST "+apiV1+"/auth/signin", deps.authHandler.SignIn)

	// Sale ledger endpoints
	mux.Handle("POST "+apiV1+"/sales", secured(deps.salesHandler.RecordSale, domain.CapRecordSales))
	mux.Handle("GET "+apiV1+"/sales", secured(deps.salesHandler.ListSales))
	mux.Handle("PUT "+apiV1+"/sales/{id}", secured(deps.salesHandler.UpdateSale, domain.CapRecordSales))
	mux.Handle("DELETE "+apiV1+"/sales/{id}", secured(deps.salesHandler.DeleteSale, domain.CapRecordSales))

	// Drug catalogue endpoints
	mux.Handle("POST "+apiV1+"/drugs", secured(deps.drugsHandler.CreateDrug, domain.CapManageDrugs))
	mux.Handle("GET "+apiV1+"/drugs", secured(deps.drugsHandler.ListDrugs))
	mux.Handle("GET "+apiV1+"/drugs/{id}", secured(deps.drugsHandler.GetDrug))
	mux.Handle("PUT "+apiV1+"/drugs/{id}", secured(deps.drugsHandler.UpdateDrug, domain.CapManageDrugs))
	mux.Handle("DELETE "+apiV1+"/drugs/{id}", secured(deps.drugsHandler.DeleteDrug, domain.CapManageDrugs))

	// Store directory endpoints
	mux.Handle("POST "+apiV1+"/stores", secured(deps.storesHandler.CreateStore, domain.CapManageStores))
	mux.Handle("GET "+apiV1+"/stores", secured(deps.storesHandler.ListStores))
	mux.Handle("GET "+apiV1+"/stores/summary", secured(deps.storesHandler.GetSummary))
	mux.Handle("PUT "+apiV1+"/stores/{id}", secured(deps.storesHandler.UpdateStore, domain.CapManageStores))
	mux.Handle("DELETE "+apiV1+"/stores/{id}", secured(deps.storesHandler.DeleteStore, domain.CapManageStores))

	// Staff directory endpoints
	mux.Handle("POST "+apiV1+"/staff", secured(deps.staffHandler.CreateStaff, domain.CapManageStaff))
	mux.Handle("GET "+apiV1+"/staff", secured(deps.staffHandler.ListStaff))
	mux.Handle("GET "+apiV1+"/staff/summary", secured(deps.staffHandler.GetSummary))
	mux.Handle("PUT "+apiV1+"/staff/{id}", secured(deps.staffHandler.UpdateStaff, domain.CapManageStaff))
	mux.Handle("DELETE "+apiV1+"/staff/{id}", secured(deps.staffHandler.DeleteStaff, domain.CapManageStaff))

	// Expense endpoints
	mux.Handle("POST "+apiV1+"/expenses", secured(deps.expensesHandler.RecordExpense, domain.CapManageExpenses))
	mux.Handle("GET "+apiV1+"/expenses", secured(deps.expensesHandler.ListExpenses))
	mux.Handle("GET "+apiV1+"/expenses/daily", secured(deps.expensesHandler.GetDailyTotals))
	mux.Handle("GET "+apiV1+"/expenses/monthly", secured(deps.expensesHandler.GetMonthlyTotals))
	mux.Handle("DELETE "+apiV1+"/expenses/{id}", secured(deps.expensesHandler.DeleteExpense, domain.CapManageExpenses))

	// Dashboard endpoint
	mux.Handle("GET "+apiV1+"/dashboard", secured(deps.dashboardHandler.GetOverview))

	// Export and report endpoints
	mux.Handle("GET "+apiV1+"/export/sales.xlsx", secured(deps.exportHandler.ExportSalesExcel))
	mux.Handle("POST "+apiV1+"/reports/sales", secured(deps.exportHandler.RequestSalesReport))
	mux.Handle("GET "+apiV1+"/reports/status/{id}", secured(deps.exportHandler.GetReportStatus))

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
