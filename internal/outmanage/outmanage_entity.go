package outmanage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is one coverage period of an outsourced staff member. The period
// start is part of the key, so moving it means replacing the row.
type Contract struct {
	TenantID           string          `gorm:"type:varchar(20);primaryKey"`
	StaffID            string          `gorm:"type:varchar(20);primaryKey"`
	PeriodStart        string          `gorm:"type:char(8);primaryKey"`
	PeriodEnd          string          `gorm:"type:char(8);not null"`
	TotalEntitlement   decimal.Decimal `gorm:"type:numeric(9,2);not null"`
	ServiceEntitlement decimal.Decimal `gorm:"type:numeric(9,2);not null"`
	Note               string          `gorm:"type:text"`
	LastEditorID       string          `gorm:"type:varchar(40)"`
	LastEditedAt       time.Time
}

func (Contract) TableName() string {
	return "out_contracts"
}

// ContractWithStaff is a contract joined with the staff display name.
type ContractWithStaff struct {
	Contract
	StaffName string
}

// Period is an inclusive YYYYMMDD span.
type Period struct {
	Start string `gorm:"column:period_start"`
	End   string `gorm:"column:period_end"`
}
