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

	"github.com/sondurak/garage-be/internal/adapters/db"
	redis_a "github.com/sondurak/garage-be/internal/adapters/redis_adapter"
	"github.com/sondurak/garage-be/internal/adapters/storage"
	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/handlers"
	"github.com/sondurak/garage-be/internal/handlers/middleware"
	"github.com/sondurak/garage-be/internal/pkg/config"
	"github.com/sondurak/garage-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting garage management system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	// Overlay secrets from the configured secrets manager, if any
	if err := config.ApplySecrets(ctx, cfg, slogger.Logger); err != nil {
		slogger.Error("failed to apply secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		if cfg.IsProduction() {
			os.Exit(1)
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
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

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	authService ports.AuthService

	authHandler     *handlers.AuthHandler
	purchaseHandler *handlers.PurchaseHandler
	repairHandler   *handlers.RepairHandler
	expenseHandler  *handlers.ExpenseHandler
	vehicleHandler  *handlers.VehicleHandler
	catalogHandler  *handlers.CatalogHandler
	analysisHandler *handlers.AnalysisHandler
	exportHandler   *handlers.ExportHandler
	userHandler     *handlers.UserHandler
	healthHandler   *handlers.HealthHandler
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
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	purchaseRepo := db.NewPurchaseRepository(database, slogger)
	repairRepo := db.NewRepairRepository(database, slogger)
	expenseRepo := db.NewExpenseRepository(database, slogger)
	vehicleRepo := db.NewVehicleRepository(database, slogger)
	supplierRepo := db.NewSupplierRepository(database, slogger)
	partRepo := db.NewPartRepository(database, slogger)
	userRepo := db.NewUserRepository(database, slogger)
	analysisRepo := db.NewAnalysisRepository(database, slogger)

	// Services
	purchaseService := services.NewPurchaseService(purchaseRepo, supplierRepo, deps.cache, slogger)
	repairService := services.NewRepairService(repairRepo, partRepo, deps.cache, slogger)
	expenseService := services.NewExpenseService(expenseRepo, deps.cache, slogger)
	vehicleService := services.NewVehicleService(vehicleRepo, repairRepo, deps.cache, cfg.Report.PublicBaseURL, slogger)
	catalogService := services.NewCatalogService(supplierRepo, partRepo, slogger)
	analysisService := services.NewAnalysisService(analysisRepo, deps.cache, slogger)
	authService := services.NewAuthService(userRepo, deps.cache, cfg.Security.JWTSecret, cfg.Security.JWTExpiration, slogger)
	exportService := services.NewExportService(purchaseRepo, repairRepo, expenseRepo, supplierRepo, vehicleService, services.Branding{
		ShopName:   cfg.Report.ShopName,
		Subtitle:   cfg.Report.Subtitle,
		Disclaimer: cfg.Report.Disclaimer,
	}, slogger)
	deps.authService = authService

	// Handlers
	deps.authHandler = handlers.NewAuthHandler(authService, slogger)
	deps.purchaseHandler = handlers.NewPurchaseHandler(purchaseService, slogger)
	deps.repairHandler = handlers.NewRepairHandler(repairService, slogger)
	deps.expenseHandler = handlers.NewExpenseHandler(expenseService, slogger)
	deps.vehicleHandler = handlers.NewVehicleHandler(vehicleService, slogger)
	deps.catalogHandler = handlers.NewCatalogHandler(catalogService, slogger)
	deps.analysisHandler = handlers.NewAnalysisHandler(analysisService, slogger)
	// The archive client is only needed to presign completed report jobs;
	// the API keeps serving if object storage is unreachable.
	var archive storage.ArchiveClient
	if s3, err := storage.NewS3Archive(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger); err != nil {
		slogger.Warn("report archive unavailable", slog.String("error", err.Error()))
	} else {
		archive = s3
	}

	deps.exportHandler = handlers.NewExportHandler(exportService, deps.asynqClient, database, archive, slogger)
	deps.userHandler = handlers.NewUserHandler(userRepo, slogger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, slogger)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(slogger)(handler)
		handler = middleware.Recovery(slogger.Logger)(handler)
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

	registerRoutes(mux, deps, slogger.Logger, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, slogger *slog.Logger, cfg *config.Config) {
	apiV1 := "/api/v1"

	auth := middleware.Authenticate(deps.authService, slogger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return auth(adminOnly(h))
	}

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	}

	// Public vehicle history page, addressed by QR slug
	mux.HandleFunc("GET /public/vehicles/{qr}", deps.vehicleHandler.PublicHistory)

	// Auth endpoints
	mux.HandleFunc("POST "+apiV1+"/auth/login", deps.authHandler.Login)
	mux.Handle("POST "+apiV1+"/auth/register", admin(deps.authHandler.Register))
	mux.Handle("POST "+apiV1+"/auth/logout", protected(deps.authHandler.Logout))
	mux.Handle("GET "+apiV1+"/auth/me", protected(deps.authHandler.Me))

	// Purchase endpoints
	mux.Handle("GET "+apiV1+"/purchases", protected(deps.purchaseHandler.List))
	mux.Handle("GET "+apiV1+"/purchases/{id}", protected(deps.purchaseHandler.Get))
	mux.Handle("POST "+apiV1+"/purchases", protected(deps.purchaseHandler.Create))
	mux.Handle("PUT "+apiV1+"/purchases/{id}", protected(deps.purchaseHandler.Update))
	mux.Handle("DELETE "+apiV1+"/purchases/{id}", protected(deps.purchaseHandler.Delete))

	// Repair endpoints
	mux.Handle("GET "+apiV1+"/repairs", protected(deps.repairHandler.List))
	mux.Handle("GET "+apiV1+"/repairs/{id}", protected(deps.repairHandler.Get))
	mux.Handle("POST "+apiV1+"/repairs", protected(deps.repairHandler.Create))
	mux.Handle("PUT "+apiV1+"/repairs/{id}", protected(deps.repairHandler.Update))
	mux.Handle("DELETE "+apiV1+"/repairs/{id}", protected(deps.repairHandler.Delete))

	// Expense endpoints
	mux.Handle("GET "+apiV1+"/expenses", protected(deps.expenseHandler.List))
	mux.Handle("GET "+apiV1+"/expenses/{id}", protected(deps.expenseHandler.Get))
	mux.Handle("POST "+apiV1+"/expenses", protected(deps.expenseHandler.Create))
	mux.Handle("PUT "+apiV1+"/expenses/{id}", protected(deps.expenseHandler.Update))
	mux.Handle("DELETE "+apiV1+"/expenses/{id}", protected(deps.expenseHandler.Delete))

	// Vehicle endpoints
	mux.Handle("GET "+apiV1+"/vehicles", protected(deps.vehicleHandler.List))
	mux.Handle("GET "+apiV1+"/vehicles/{id}", protected(deps.vehicleHandler.Get))
	mux.Handle("POST "+apiV1+"/vehicles", protected(deps.vehicleHandler.Create))
	mux.Handle("PUT "+apiV1+"/vehicles/{id}", protected(deps.vehicleHandler.Update))
	mux.Handle("DELETE "+apiV1+"/vehicles/{id}", protected(deps.vehicleHandler.Delete))
	mux.Handle("GET "+apiV1+"/vehicles/{id}/history", protected(deps.vehicleHandler.History))
	mux.Handle("GET "+apiV1+"/vehicles/{id}/history/pdf", protected(deps.exportHandler.VehicleHistoryPDF))
	mux.Handle("GET "+apiV1+"/vehicles/{id}/qrcode", protected(deps.vehicleHandler.QRCode))

	// Catalog endpoints
	mux.Handle("GET "+apiV1+"/suppliers", protected(deps.catalogHandler.ListSuppliers))
	mux.Handle("GET "+apiV1+"/suppliers/{id}", protected(deps.catalogHandler.GetSupplier))
	mux.Handle("POST "+apiV1+"/suppliers", protected(deps.catalogHandler.CreateSupplier))
	mux.Handle("PUT "+apiV1+"/suppliers/{id}", protected(deps.catalogHandler.UpdateSupplier))
	mux.Handle("DELETE "+apiV1+"/suppliers/{id}", protected(deps.catalogHandler.DeleteSupplier))
	mux.Handle("GET "+apiV1+"/parts", protected(deps.catalogHandler.ListParts))
	mux.Handle("GET "+apiV1+"/parts/{id}", protected(deps.catalogHandler.GetPart))
	mux.Handle("POST "+apiV1+"/parts", protected(deps.catalogHandler.CreatePart))
	mux.Handle("PUT "+apiV1+"/parts/{id}", protected(deps.catalogHandler.UpdatePart))
	mux.Handle("DELETE "+apiV1+"/parts/{id}", protected(deps.catalogHandler.DeletePart))

	// Analysis endpoint
	// User administration
	mux.Handle("GET "+apiV1+"/users", admin(deps.userHandler.List))
	mux.Handle("GET "+apiV1+"/users/{id}", admin(deps.userHandler.Get))
	mux.Handle("PUT "+apiV1+"/users/{id}", admin(deps.userHandler.Update))
	mux.Handle("DELETE "+apiV1+"/users/{id}", admin(deps.userHandler.Delete))

	mux.Handle("GET "+apiV1+"/analysis", protected(deps.analysisHandler.Analyze))

	// Export endpoints
	mux.Handle("GET "+apiV1+"/exports/purchases/pdf", protected(deps.exportHandler.PurchasesPDF))
	mux.Handle("GET "+apiV1+"/exports/purchases/excel", protected(deps.exportHandler.PurchasesExcel))
	mux.Handle("GET "+apiV1+"/exports/expenses/pdf", protected(deps.exportHandler.ExpensesPDF))
	mux.Handle("GET "+apiV1+"/exports/repairs/pdf", protected(deps.exportHandler.RepairsPDF))
	mux.Handle("POST "+apiV1+"/exports/reports", protected(deps.exportHandler.QueueReport))
	mux.Handle("GET "+apiV1+"/exports/jobs/{id}", protected(deps.exportHandler.JobStatus))

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL:    cfg.GetDatabaseURL(),
		SourcePath:     cfg.Database.MigrationPath,
		EmbeddedSource: db.MigrationsFS,
		UseEmbedded:    cfg.Database.MigrationPath == "",
		TableName:      "schema_migrations",
		SchemaName:     "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
