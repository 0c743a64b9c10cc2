package model

import "time"

// Transaction is a purchase header. The numeric ID is assigned by the
// database on insert; TransactionCode stays null until the persister
// derives it from that ID, and is unique once set.
type Transaction struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	TransactionCode *string             `gorm:"type:varchar(50);uniqueIndex" json:"transaction_code"`
	TotalPrice      int64               `gorm:"not null" json:"total_price"` // tax-exclusive
	CreatedAt       time.Time           `json:"created_at"`
	Details         []TransactionDetail `gorm:"constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

// TransactionDetail is one line item. ProductCode, ProductName and
// UnitPrice are copied values captured at purchase time, so later catalog
// edits never rewrite purchase history.
type TransactionDetail struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID uint   `gorm:"not null;index" json:"transaction_id"`
	ProductCode   string `gorm:"type:varchar(50);not null" json:"product_code"`
	ProductName   string `gorm:"type:varchar(100);not null" json:"product_name"`
	UnitPrice     int64  `gorm:"not null" json:"unit_price"` // tax-exclusive
	Quantity      int    `gorm:"not null" json:"quantity"`
}
