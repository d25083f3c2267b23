package outmanagetime

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageEntry is one leave or time-off request charged against a contract
// period. The period is copied from the contract when the entry is written
// and is not checked against out_contracts.
type UsageEntry struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	TenantID           string          `gorm:"type:varchar(20);not null;index:idx_out_usages_staff_span"`
	StaffID            string          `gorm:"type:varchar(20);not null;index:idx_out_usages_staff_span"`
	LeaveTypeCode      *string         `gorm:"type:varchar(40)"`
	RequestedOn        *string         `gorm:"type:char(8)"`
	ApprovalStatusCode *string         `gorm:"type:varchar(40)"`
	PeriodStart        string          `gorm:"type:char(8);not null;index:idx_out_usages_staff_span"`
	PeriodEnd          string          `gorm:"type:char(8);not null;index:idx_out_usages_staff_span"`
	Quantity           decimal.Decimal `gorm:"type:numeric(9,2);not null"`
	Note               string          `gorm:"type:text"`
	LastEditorID       string          `gorm:"type:varchar(40)"`
	LastEditedAt       time.Time
}

func (UsageEntry) TableName() string {
	return "out_usages"
}

// SummaryRow is a contract with the approved usage charged inside its span.
type SummaryRow struct {
	StaffID            string
	StaffName          string
	PeriodStart        string
	PeriodEnd          string
	TotalEntitlement   decimal.Decimal
	ServiceEntitlement decimal.Decimal
	Used               decimal.Decimal
}
