package code

// Code is one row of the shared code table maintained by the admin screens.
type Code struct {
	TenantID  string `gorm:"type:varchar(20);primaryKey"`
	GroupCode string `gorm:"type:varchar(40);primaryKey"`
	Code      string `gorm:"type:varchar(40);primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	SortOrder int    `gorm:"not null;default:0"`
	UseYN     string `gorm:"column:use_yn;type:char(1);not null;default:'Y'"`
}

func (Code) TableName() string {
	return "codes"
}
