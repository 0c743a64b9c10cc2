package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type LocalProductRepository interface {
	Create(product *model.LocalProduct) error
	FindAll() ([]model.LocalProduct, error)
	FindByCode(code string) (*model.LocalProduct, error)
	Update(product *model.LocalProduct) error
}

type localProductRepo struct {
	db *gorm.DB
}

func NewLocalProductRepo(db *gorm.DB) LocalProductRepository {
	return &localProductRepo{db}
}

func (r *localProductRepo) Create(product *model.LocalProduct) error {
	return r.db.Create(product).Error
}

func (r *localProductRepo) FindAll() ([]model.LocalProduct, error) {
	var products []model.LocalProduct
	err := r.db.Order("product_code ASC").Find(&products).Error
	return products, err
}

func (r *localProductRepo) FindByCode(code string) (*model.LocalProduct, error) {
	var product model.LocalProduct
	if err := r.db.First(&product, "product_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *localProductRepo) Update(product *model.LocalProduct) error {
	return r.db.Save(product).Error
}
