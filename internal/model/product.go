package model

// Product is the global product master. Codes are fixed-format barcodes
// (JAN), unique across the table. Price is tax-exclusive, in the smallest
// currency unit.
type Product struct {
	BaseModel
	ProductCode string `gorm:"type:varchar(13);uniqueIndex;not null" json:"product_code" validate:"required"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Price       int64  `gorm:"not null" json:"price" validate:"gte=0"`
}
