package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	OrderID        int64           `gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID         int64           `gorm:"column:user_id;not null;index"`
	Date           time.Time       `gorm:"not null"`
	Address        string          `gorm:"type:varchar(200)"`
	City           string          `gorm:"type:varchar(50)"`
	State          string          `gorm:"type:varchar(50)"`
	Zip            string          `gorm:"type:varchar(20)"`
	ShippingAmount decimal.Decimal `gorm:"column:shipping_amount;type:decimal(10,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineItemModel is the GORM-specific struct for the 'order_line_items' table.
type OrderLineItemModel struct {
	OrderID    int64           `gorm:"column:order_id;primaryKey"`
	ProductID  int64           `gorm:"column:product_id;primaryKey"`
	SalesPrice decimal.Decimal `gorm:"column:sales_price;type:decimal(10,2);not null"`
	Quantity   int             `gorm:"not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(4,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineItemModel) TableName() string {
	return "order_line_items"
}
