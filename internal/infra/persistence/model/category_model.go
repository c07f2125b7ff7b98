package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	CategoryID  int64  `gorm:"column:category_id;primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
