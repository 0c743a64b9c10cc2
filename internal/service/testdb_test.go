package service_test

import (
	"fmt"
	"strings"
	"testing"

	"go-pos-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database. cache=shared
// keeps the schema alive across pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Product{},
		&model.LocalProduct{},
		&model.Transaction{},
		&model.TransactionDetail{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	products := []model.Product{
		{ProductCode: "P001", Name: "商品A", Price: 300},
		{ProductCode: "P002", Name: "商品B", Price: 200},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	local := model.LocalProduct{ProductCode: "LP003", Name: "ローカル商品C", Price: 150, StoreID: "S1"}
	if err := db.Create(&local).Error; err != nil {
		t.Fatalf("failed to seed local products: %v", err)
	}
}
