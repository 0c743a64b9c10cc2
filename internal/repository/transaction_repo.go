package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// Write methods take *gorm.DB (tx) so the service can run them inside
	// one transaction block.
	CreateHeader(tx *gorm.DB, t *model.Transaction) error
	CreateDetails(tx *gorm.DB, details []model.TransactionDetail) error
	SetCode(tx *gorm.DB, id uint, code string) error

	FindAll() ([]model.Transaction, error)
	FindByID(id uint) (*model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) CreateHeader(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) CreateDetails(tx *gorm.DB, details []model.TransactionDetail) error {
	return tx.Create(&details).Error
}

func (r *transactionRepo) SetCode(tx *gorm.DB, id uint, code string) error {
	return tx.Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("transaction_code", code).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Details").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.Preload("Details").First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}
