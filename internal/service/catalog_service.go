package service

import (
	"errors"

	"go-pos-backend/internal/repository"

	"gorm.io/gorm"
)

// CatalogRecord is a master-independent view of a resolved product.
type CatalogRecord struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
}

// productSource is one catalog master in the resolution order.
type productSource interface {
	find(code string) (*CatalogRecord, error)
}

type CatalogService interface {
	Resolve(code string) (*CatalogRecord, error)
}

type catalogService struct {
	sources []productSource
}

// NewCatalogService wires the resolution order: global master first, then
// the store-local master. First hit wins on a code collision; the masters
// are never merged. That ordering is a business rule, not a storage
// detail.
func NewCatalogService(pRepo repository.ProductRepository, lpRepo repository.LocalProductRepository) CatalogService {
	return &catalogService{
		sources: []productSource{
			globalSource{repo: pRepo},
			localSource{repo: lpRepo},
		},
	}
}

func (s *catalogService) Resolve(code string) (*CatalogRecord, error) {
	for _, src := range s.sources {
		record, err := src.find(code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, ErrProductNotFound
}

type globalSource struct {
	repo repository.ProductRepository
}

func (s globalSource) find(code string) (*CatalogRecord, error) {
	p, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	return &CatalogRecord{ProductCode: p.ProductCode, Name: p.Name, Price: p.Price}, nil
}

type localSource struct {
	repo repository.LocalProductRepository
}

func (s localSource) find(code string) (*CatalogRecord, error) {
	p, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	return &CatalogRecord{ProductCode: p.ProductCode, Name: p.Name, Price: p.Price}, nil
}
