package service_test

import (
	"errors"
	"regexp"
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"gorm.io/gorm"
)

var transactionCodePattern = regexp.MustCompile(`^TRN-\d{8}-\d{4}$`)

func newPurchaseService(t *testing.T) (service.PurchaseService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	seedCatalog(t, db)

	catalog := service.NewCatalogService(
		repository.NewProductRepo(db),
		repository.NewLocalProductRepo(db),
	)
	purchase := service.NewPurchaseService(catalog, repository.NewTransactionRepo(db), db, nil)
	return purchase, db
}

func countRows(t *testing.T, db *gorm.DB) (headers, details int64) {
	t.Helper()
	if err := db.Model(&model.Transaction{}).Count(&headers).Error; err != nil {
		t.Fatalf("count headers: %v", err)
	}
	if err := db.Model(&model.TransactionDetail{}).Count(&details).Error; err != nil {
		t.Fatalf("count details: %v", err)
	}
	return headers, details
}

func TestCreatePurchaseTotalsAndPersistence(t *testing.T) {
	purchase, db := newPurchaseService(t)

	result, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{
			{ProductCode: "P001", Quantity: 2},  // 600
			{ProductCode: "P002", Quantity: 1},  // 200
			{ProductCode: "LP003", Quantity: 3}, // 450, local master
		},
	})
	if err != nil {
		t.Fatalf("CreatePurchase returned error: %v", err)
	}

	if result.TotalPriceWithoutTax != 1250 {
		t.Errorf("TotalPriceWithoutTax = %d, want 1250", result.TotalPriceWithoutTax)
	}
	if result.TotalPriceWithTax != 1375 {
		t.Errorf("TotalPriceWithTax = %d, want 1375", result.TotalPriceWithTax)
	}
	if result.TaxRate != 0.10 {
		t.Errorf("TaxRate = %v, want 0.10", result.TaxRate)
	}
	if result.ItemsCount != 3 {
		t.Errorf("ItemsCount = %d, want 3", result.ItemsCount)
	}
	if !transactionCodePattern.MatchString(result.TransactionCode) {
		t.Errorf("TransactionCode = %q, want TRN-YYYYMMDD-NNNN", result.TransactionCode)
	}

	// The header and its details must be persisted together.
	var header model.Transaction
	if err := db.Preload("Details").First(&header).Error; err != nil {
		t.Fatalf("loading persisted transaction: %v", err)
	}
	if header.TransactionCode == nil || *header.TransactionCode != result.TransactionCode {
		t.Errorf("persisted code = %v, want %q", header.TransactionCode, result.TransactionCode)
	}
	if header.TotalPrice != 1250 {
		t.Errorf("persisted total = %d, want 1250", header.TotalPrice)
	}
	if len(header.Details) != 3 {
		t.Fatalf("persisted %d details, want 3", len(header.Details))
	}

	// Details keep submission order and snapshot values.
	want := []model.TransactionDetail{
		{ProductCode: "P001", ProductName: "商品A", UnitPrice: 300, Quantity: 2},
		{ProductCode: "P002", ProductName: "商品B", UnitPrice: 200, Quantity: 1},
		{ProductCode: "LP003", ProductName: "ローカル商品C", UnitPrice: 150, Quantity: 3},
	}
	for i, d := range header.Details {
		if d.TransactionID != header.ID {
			t.Errorf("detail %d references transaction %d, want %d", i, d.TransactionID, header.ID)
		}
		if d.ProductCode != want[i].ProductCode || d.ProductName != want[i].ProductName ||
			d.UnitPrice != want[i].UnitPrice || d.Quantity != want[i].Quantity {
			t.Errorf("detail %d = %+v, want %+v", i, d, want[i])
		}
	}
}

func TestCreatePurchaseEmptyItems(t *testing.T) {
	purchase, db := newPurchaseService(t)

	_, err := purchase.CreatePurchase(&service.PurchaseRequest{Items: nil})

	var invalid *service.InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRequestError", err)
	}
	if invalid.Reason != "items is empty" {
		t.Errorf("reason = %q, want %q", invalid.Reason, "items is empty")
	}

	if h, d := countRows(t, db); h != 0 || d != 0 {
		t.Errorf("persisted %d headers / %d details, want none", h, d)
	}
}

func TestCreatePurchaseInvalidQuantity(t *testing.T) {
	purchase, db := newPurchaseService(t)

	// The earlier valid item must not survive the rejection.
	_, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{
			{ProductCode: "P001", Quantity: 2},
			{ProductCode: "P002", Quantity: 0},
		},
	})

	var invalid *service.InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRequestError", err)
	}
	if invalid.Reason != "invalid quantity: 0" {
		t.Errorf("reason = %q, want %q", invalid.Reason, "invalid quantity: 0")
	}

	if h, d := countRows(t, db); h != 0 || d != 0 {
		t.Errorf("persisted %d headers / %d details, want none", h, d)
	}
}

func TestCreatePurchaseUnknownCode(t *testing.T) {
	purchase, db := newPurchaseService(t)

	_, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{
			{ProductCode: "P001", Quantity: 1},
			{ProductCode: "NOPE", Quantity: 1},
		},
	})

	var invalid *service.InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRequestError", err)
	}
	if invalid.Reason != "unknown product code 'NOPE'" {
		t.Errorf("reason = %q, want the offending code named", invalid.Reason)
	}

	if h, d := countRows(t, db); h != 0 || d != 0 {
		t.Errorf("persisted %d headers / %d details, want none", h, d)
	}
}

// failingDetailsRepo simulates storage giving out between the header and
// detail inserts.
type failingDetailsRepo struct {
	repository.TransactionRepository
}

func (r failingDetailsRepo) CreateDetails(tx *gorm.DB, details []model.TransactionDetail) error {
	return errors.New("storage unavailable")
}

func TestCreatePurchaseDetailFailureLeavesNoRows(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	catalog := service.NewCatalogService(
		repository.NewProductRepo(db),
		repository.NewLocalProductRepo(db),
	)
	purchase := service.NewPurchaseService(
		catalog,
		failingDetailsRepo{repository.NewTransactionRepo(db)},
		db,
		nil,
	)

	_, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{{ProductCode: "P001", Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreatePurchase succeeded, want a storage failure")
	}
	var invalid *service.InvalidRequestError
	if errors.As(err, &invalid) {
		t.Fatalf("error = %v, want a storage failure, not a request rejection", err)
	}

	// The header insert succeeded inside the block, so the rollback must
	// take it away again: no header may exist without its details.
	if h, d := countRows(t, db); h != 0 || d != 0 {
		t.Errorf("persisted %d headers / %d details after failed write, want none", h, d)
	}
}

func TestCreatePurchaseSnapshotSurvivesCatalogEdit(t *testing.T) {
	purchase, db := newPurchaseService(t)

	if _, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{{ProductCode: "P001", Quantity: 1}},
	}); err != nil {
		t.Fatalf("CreatePurchase returned error: %v", err)
	}

	// Raise the catalog price after the sale.
	if err := db.Model(&model.Product{}).
		Where("product_code = ?", "P001").
		Update("price", 999).Error; err != nil {
		t.Fatalf("updating catalog price: %v", err)
	}

	var detail model.TransactionDetail
	if err := db.First(&detail, "product_code = ?", "P001").Error; err != nil {
		t.Fatalf("loading detail: %v", err)
	}
	if detail.UnitPrice != 300 {
		t.Errorf("detail unit price = %d, want the snapshot 300", detail.UnitPrice)
	}
}

func TestCreatePurchaseRepeatedRequestsAreDistinct(t *testing.T) {
	purchase, _ := newPurchaseService(t)

	req := &service.PurchaseRequest{
		Items: []service.PurchaseItem{{ProductCode: "P001", Quantity: 2}},
	}

	first, err := purchase.CreatePurchase(req)
	if err != nil {
		t.Fatalf("first CreatePurchase: %v", err)
	}
	second, err := purchase.CreatePurchase(req)
	if err != nil {
		t.Fatalf("second CreatePurchase: %v", err)
	}

	if first.TransactionCode == second.TransactionCode {
		t.Errorf("both purchases got code %q, want distinct codes", first.TransactionCode)
	}
	if first.TotalPriceWithoutTax != second.TotalPriceWithoutTax ||
		first.TotalPriceWithTax != second.TotalPriceWithTax {
		t.Errorf("identical requests produced different totals: %+v vs %+v", first, second)
	}
}

func TestGetTransactionByID(t *testing.T) {
	purchase, _ := newPurchaseService(t)

	result, err := purchase.CreatePurchase(&service.PurchaseRequest{
		Items: []service.PurchaseItem{{ProductCode: "P002", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreatePurchase returned error: %v", err)
	}

	transactions, err := purchase.GetAllTransactions()
	if err != nil {
		t.Fatalf("GetAllTransactions: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}

	loaded, err := purchase.GetTransactionByID(transactions[0].ID)
	if err != nil {
		t.Fatalf("GetTransactionByID: %v", err)
	}
	if loaded.TransactionCode == nil || *loaded.TransactionCode != result.TransactionCode {
		t.Errorf("loaded code = %v, want %q", loaded.TransactionCode, result.TransactionCode)
	}
	if len(loaded.Details) != 1 {
		t.Errorf("loaded %d details, want 1", len(loaded.Details))
	}
}
