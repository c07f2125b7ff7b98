package model

// CartItemModel is the GORM-specific struct for the 'shopping_cart' table.
// The (user_id, product_id) pair is the unique key the atomic upsert relies on.
type CartItemModel struct {
	UserID    int64 `gorm:"column:user_id;primaryKey"`
	ProductID int64 `gorm:"column:product_id;primaryKey"`
	Quantity  int   `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "shopping_cart"
}
