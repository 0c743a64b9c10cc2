package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"

	"gorm.io/gorm"
)

type PurchaseItem struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
}

type PurchaseRequest struct {
	Items []PurchaseItem `json:"items"`
}

type PurchaseResult struct {
	TransactionID        string  `json:"transaction_id"`
	TransactionCode      string  `json:"transaction_code"`
	TotalPriceWithoutTax int64   `json:"total_price_without_tax"`
	TotalPriceWithTax    int64   `json:"total_price_with_tax"`
	TaxRate              float64 `json:"tax_rate"`
	ItemsCount           int     `json:"items_count"` // line entries, not sum of quantities
}

type PurchaseService interface {
	CreatePurchase(req *PurchaseRequest) (*PurchaseResult, error)
	GetAllTransactions() ([]model.Transaction, error)
	GetTransactionByID(id uint) (*model.Transaction, error)
}

type purchaseService struct {
	catalog         CatalogService
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

// NewPurchaseService wires the purchase pipeline. hub may be nil when no
// live display is attached.
func NewPurchaseService(catalog CatalogService, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		catalog:         catalog,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *purchaseService) CreatePurchase(req *PurchaseRequest) (*PurchaseResult, error) {
	// 1. Validate and price in submission order. The first invalid item
	// aborts the whole request; nothing is written until this loop is done.
	if len(req.Items) == 0 {
		return nil, &InvalidRequestError{Reason: "items is empty"}
	}

	var totalWithoutTax int64
	details := make([]model.TransactionDetail, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, invalidRequestf("invalid quantity: %d", item.Quantity)
		}

		record, err := s.catalog.Resolve(item.ProductCode)
		if errors.Is(err, ErrProductNotFound) {
			return nil, invalidRequestf("unknown product code '%s'", item.ProductCode)
		}
		if err != nil {
			return nil, err
		}

		// Snapshot name and price now; later catalog edits must not
		// rewrite this purchase.
		totalWithoutTax += record.Price * int64(item.Quantity)
		details = append(details, model.TransactionDetail{
			ProductCode: record.ProductCode,
			ProductName: record.Name,
			UnitPrice:   record.Price,
			Quantity:    item.Quantity,
		})
	}

	// 2. Persist header, details and the derived code as one atomic unit.
	// Any failure rolls all of it back; a header is never visible without
	// its details.
	transaction := &model.Transaction{TotalPrice: totalWithoutTax}
	var code string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transactionRepo.CreateHeader(tx, transaction); err != nil {
			return err
		}
		for i := range details {
			details[i].TransactionID = transaction.ID
		}
		if err := s.transactionRepo.CreateDetails(tx, details); err != nil {
			return err
		}
		code = fmt.Sprintf("TRN-%s-%04d", time.Now().Format("20060102"), transaction.ID)
		return s.transactionRepo.SetCode(tx, transaction.ID, code)
	})
	if err != nil {
		return nil, err
	}

	// 3. Push the completed sale to connected displays.
	if s.wsHub != nil {
		s.wsHub.Publish(map[string]interface{}{
			"type":                    "purchase_completed",
			"transaction_code":        code,
			"total_price_without_tax": totalWithoutTax,
			"total_price_with_tax":    TotalWithTax(totalWithoutTax),
			"items_count":             len(details),
		})
	}

	return &PurchaseResult{
		TransactionID:        code,
		TransactionCode:      code,
		TotalPriceWithoutTax: totalWithoutTax,
		TotalPriceWithTax:    TotalWithTax(totalWithoutTax),
		TaxRate:              TaxRate,
		ItemsCount:           len(details),
	}, nil
}

func (s *purchaseService) GetAllTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *purchaseService) GetTransactionByID(id uint) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(id)
}
