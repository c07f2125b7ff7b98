package model

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Profiles are one-to-one with users; user_id is both PK and FK.
type ProfileModel struct {
	UserID    int64  `gorm:"column:user_id;primaryKey"`
	FirstName string `gorm:"type:varchar(50)"`
	LastName  string `gorm:"type:varchar(50)"`
	Phone     string `gorm:"type:varchar(20)"`
	Email     string `gorm:"type:varchar(200)"`
	Address   string `gorm:"type:varchar(200)"`
	City      string `gorm:"type:varchar(50)"`
	State     string `gorm:"type:varchar(50)"`
	Zip       string `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
