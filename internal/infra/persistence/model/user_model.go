package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	UserID         int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(50);not null;uniqueIndex"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	Role           string `gorm:"type:varchar(50);not null;default:user"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
