package database

import (
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, username string, tags ...string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashed_password",
		Tags:         models.TagList(tags),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestRecord persists a record for the user. createdAt drives the
// generated identifier so tests can control creation order.
func CreateTestRecord(t *testing.T, db *DB, userID uuid.UUID, createdAt time.Time, amount float64, recordType, description string, tags ...string) *models.Record {
	t.Helper()

	record := &models.Record{
		ID:          models.NewRecordIDAt(createdAt),
		UserID:      userID,
		Date:        createdAt,
		Amount:      decimal.NewFromFloat(amount),
		Type:        recordType,
		Tags:        models.TagList(tags),
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}

	return record
}
