// cmd/seeder/main.go
//
// Seeds the database with the initial admin account and, optionally, a
// set of demo records for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sondurak/garage-be/internal/adapters/db"
	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/pkg/config"
	"github.com/sondurak/garage-be/internal/pkg/logger"
	"github.com/sondurak/garage-be/internal/pkg/paging"
)

func main() {
	var (
		adminEmail    = flag.String("admin-email", "admin@sondurak.local", "Email for the initial admin account")
		adminPassword = flag.String("admin-password", "", "Password for the initial admin account (required)")
		demo          = flag.Bool("demo", false, "Seed demo suppliers, parts, vehicles and records")
		importFile    = flag.String("import-purchases", "", "JSON dump of purchases exported from the old system")
		logLevel      = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text").Logger

	if *adminPassword == "" {
		slogger.Error("admin-password is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxConnections:  4,
		MinConnections:  1,
		ConnectTimeout:  10 * time.Second,
		MaxConnLifetime: time.Hour,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder := &seeder{
		users:     db.NewUserRepository(database, slogger),
		suppliers: db.NewSupplierRepository(database, slogger),
		parts:     db.NewPartRepository(database, slogger),
		vehicles:  db.NewVehicleRepository(database, slogger),
		purchases: db.NewPurchaseRepository(database, slogger),
		repairs:   db.NewRepairRepository(database, slogger),
		expenses:  db.NewExpenseRepository(database, slogger),
		bcryptCost: cfg.Security.BcryptCost,
		logger:     slogger,
	}

	if err := seeder.seedAdmin(ctx, *adminEmail, *adminPassword); err != nil {
		slogger.Error("failed to seed admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *demo {
		if err := seeder.seedDemoData(ctx); err != nil {
			slogger.Error("failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *importFile != "" {
		if err := seeder.importPurchases(ctx, *importFile); err != nil {
			slogger.Error("failed to import purchases", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slogger.Info("seeding complete")
}

type seeder struct {
	users      ports.UserRepository
	suppliers  ports.SupplierRepository
	parts      ports.PartRepository
	vehicles   ports.VehicleRepository
	purchases  ports.PurchaseRepository
	repairs    ports.RepairRepository
	expenses   ports.ExpenseRepository
	bcryptCost int
	logger     *slog.Logger
}

func (s *seeder) seedAdmin(ctx context.Context, email, password string) error {
	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		s.logger.Info("admin account already exists", slog.String("email", email))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.User{
		FirstName:    "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	admin.PrepareForStorage()

	if err := s.users.Save(ctx, admin); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}

	s.logger.Info("admin account created",
		slog.String("id", admin.ID.String()),
		slog.String("email", email))
	return nil
}

func (s *seeder) seedDemoData(ctx context.Context) error {
	supplier := &domain.Supplier{
		ShopName:    "Yilmaz Yedek Parca",
		ContactName: "Mehmet Yilmaz",
		Phone:       "0532 111 22 33",
		Address:     "Sanayi Sitesi B Blok No:12",
	}
	supplier.PrepareForStorage()
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return fmt.Errorf("save supplier: %w", err)
	}

	partNames := []string{"Akü 60Ah", "Far Ampulü H7", "Marş Motoru", "Alternatör", "Motor Yağı 5W-30"}
	partIDs := make([]uuid.UUID, 0, len(partNames))
	for _, name := range partNames {
		part := &domain.Part{Name: name}
		part.PrepareForStorage()
		if err := s.parts.Save(ctx, part); err != nil {
			return fmt.Errorf("save part %q: %w", name, err)
		}
		partIDs = append(partIDs, part.ID)
	}

	vehicle := &domain.CustomerVehicle{
		CustomerName:  "Ali Demir",
		CustomerPhone: "0533 444 55 66",
		Brand:         "Renault",
		Model:         "Clio",
		Plate:         "34 ABC 123",
		Year:          2018,
	}
	vehicle.PrepareForStorage()
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return fmt.Errorf("save vehicle: %w", err)
	}

	now := time.Now()

	purchases := make([]domain.Purchase, 0, len(partNames))
	for i, name := range partNames {
		p := domain.Purchase{
			Date:       now.AddDate(0, 0, -i*7),
			SupplierID: supplier.ID,
			PartName:   name,
			Quantity:   i + 1,
			UnitPrice:  decimal.NewFromInt(int64(150 + i*85)),
		}
		p.PrepareForStorage()
		purchases = append(purchases, p)
	}
	if err := s.purchases.SaveBatch(ctx, purchases); err != nil {
		return fmt.Errorf("save purchases: %w", err)
	}

	repair := &domain.Repair{
		Date:        now.AddDate(0, 0, -3),
		Brand:       vehicle.Brand,
		Model:       vehicle.Model,
		Plate:       vehicle.Plate,
		Description: "Periyodik bakım ve yağ değişimi",
		MileageKM:   84500,
		OilChange:   true,
		LaborCost:   decimal.NewFromInt(750),
		Parts: []domain.RepairPart{
			{PartID: partIDs[4], PartName: partNames[4], Quantity: 1, UnitPrice: decimal.NewFromInt(950)},
		},
	}
	repair.PrepareForStorage()
	if err := s.repairs.Save(ctx, repair); err != nil {
		return fmt.Errorf("save repair: %w", err)
	}

	expense := &domain.Expense{
		Date:      now.AddDate(0, 0, -10),
		Name:      "Dükkan Kirası",
		Category:  domain.ExpenseRent,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(15000),
	}
	expense.PrepareForStorage()
	if err := s.expenses.Save(ctx, expense); err != nil {
		return fmt.Errorf("save expense: %w", err)
	}

	s.logger.Info("demo data seeded",
		slog.Int("parts", len(partNames)),
		slog.Int("purchases", len(purchases)),
		slog.String("vehicle_plate", vehicle.Plate))
	return nil
}

// importPurchases loads a purchase dump taken from the old system. Older
// exports are a bare JSON array, newer ones wrap the rows in a paginated
// envelope, so the payload goes through paging.Normalize either way.
func (s *seeder) importPurchases(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dump: %w", err)
	}

	page, err := paging.Normalize[domain.Purchase](data)
	if err != nil {
		return fmt.Errorf("parse dump: %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(page.Items))
	for i := range page.Items {
		p := page.Items[i]
		if p.Quantity <= 0 {
			p.Quantity = 1
		}
		p.PrepareForStorage()
		purchases = append(purchases, p)
	}
	if len(purchases) == 0 {
		s.logger.Info("purchase dump is empty", slog.String("path", path))
		return nil
	}

	if err := s.purchases.SaveBatch(ctx, purchases); err != nil {
		return fmt.Errorf("save purchases: %w", err)
	}

	s.logger.Info("purchases imported",
		slog.String("path", path),
		slog.Int("count", len(purchases)),
		slog.Int("total_in_dump", page.TotalItems))
	return nil
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
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
