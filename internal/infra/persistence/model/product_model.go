package model

import "github.com/shopspring/decimal"

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  int64           `gorm:"column:category_id;not null;index"`
	Description string          `gorm:"type:text"`
	SubCategory string          `gorm:"column:subcategory;type:varchar(100)"`
	Stock       int             `gorm:"not null;default:0"`
	Featured    bool            `gorm:"not null;default:false"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(200)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
