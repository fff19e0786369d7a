// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           "5432",
			User:           "test",
			Password:       "test",
			Name:           "test_garage",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 2,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Report: config.ReportConfig{
			ShopName:      "Test Oto Elektrik",
			Subtitle:      "Test Servisi",
			Disclaimer:    "Test raporu.",
			PublicBaseURL: "http://localhost:8080/public",
			SoftDeleteTTL: 90 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-at-least-32-characters!!",
			JWTExpiration:     24 * time.Hour,
			BcryptCost:        4,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestPurchase creates a test purchase
func CreateTestPurchase(overrides ...func(*domain.Purchase)) *domain.Purchase {
	p := &domain.Purchase{
		ID:         uuid.New(),
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		SupplierID: uuid.New(),
		PartName:   "Fren Balatası",
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(450),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	p.CalculateTotalCost()

	for _, override := range overrides {
		override(p)
	}

	return p
}

// CreateTestRepair creates a test repair with one part line
func CreateTestRepair(overrides ...func(*domain.Repair)) *domain.Repair {
	r := &domain.Repair{
		ID:          uuid.New(),
		Date:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Brand:       "Ford",
		Model:       "Focus",
		Plate:       "06 XYZ 42",
		Description: "Alternatör değişimi",
		MileageKM:   120000,
		LaborCost:   decimal.NewFromInt(1000),
		Parts: []domain.RepairPart{
			{PartID: uuid.New(), PartName: "Alternatör", Quantity: 1, UnitPrice: decimal.NewFromInt(3500)},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.Plate = domain.NormalizePlate(r.Plate)
	r.CalculateTotals()

	for _, override := range overrides {
		override(r)
	}

	return r
}

// CreateTestExpense creates a test expense
func CreateTestExpense(overrides ...func(*domain.Expense)) *domain.Expense {
	e := &domain.Expense{
		ID:        uuid.New(),
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Name:      "Elektrik Faturası",
		Category:  domain.ExpenseUtilities,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(2300),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	e.CalculateTotalCost()

	for _, override := range overrides {
		override(e)
	}

	return e
}

// CreateTestVehicle creates a test customer vehicle
func CreateTestVehicle(overrides ...func(*domain.CustomerVehicle)) *domain.CustomerVehicle {
	v := &domain.CustomerVehicle{
		ID:            uuid.New(),
		CustomerName:  "Ayşe Kaya",
		CustomerPhone: "0532 123 45 67",
		Brand:         "Toyota",
		Model:         "Corolla",
		Plate:         "34 ABC 123",
		Year:          2019,
		QRCode:        "a1b2c3d4e5f60708",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	v.Plate = domain.NormalizePlate(v.Plate)

	for _, override := range overrides {
		override(v)
	}

	return v
}

// CreateTestUser creates a test user account
func CreateTestUser(overrides ...func(*domain.User)) *domain.User {
	u := &domain.User{
		ID:        uuid.New(),
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@sondurak.local",
		Role:      domain.RoleStaff,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(u)
	}

	return u
}
