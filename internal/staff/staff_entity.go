package staff

import "time"

// Staff is the read side of the staff master owned by the staff CRUD screens.
type Staff struct {
	TenantID  string `gorm:"type:varchar(20);primaryKey"`
	StaffID   string `gorm:"type:varchar(20);primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Staff) TableName() string {
	return "staffs"
}
