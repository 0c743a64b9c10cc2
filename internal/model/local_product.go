package model

import "gorm.io/gorm"

// DefaultStoreID tags local master rows that were registered without an
// explicit store.
const DefaultStoreID = "default_store"

// LocalProduct is the store-local override master. The same code may also
// exist in the global master; lookups always prefer the global row.
type LocalProduct struct {
	BaseModel
	ProductCode string `gorm:"type:varchar(13);uniqueIndex;not null" json:"product_code" validate:"required"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Price       int64  `gorm:"not null" json:"price" validate:"gte=0"`
	StoreID     string `gorm:"type:varchar(50);index;not null" json:"store_id"`
}

func (lp *LocalProduct) BeforeCreate(tx *gorm.DB) error {
	if lp.StoreID == "" {
		lp.StoreID = DefaultStoreID
	}
	return lp.BaseModel.BeforeCreate(tx)
}
