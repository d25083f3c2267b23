package outmanagetime

import "ssms/internal/shared/normalize"

type SummaryRequest struct {
	AsOf string `form:"as_of"`
	Name string `form:"name"`
}

type DetailRequest struct {
	StaffID     string `form:"staff_id"`
	PeriodStart string `form:"period_start"`
	PeriodEnd   string `form:"period_end"`
}

// SaveUsageRequest inserts when ID is nil and rewrites the row otherwise.
type SaveUsageRequest struct {
	ID                 *int64         `json:"id"`
	StaffID            string         `json:"staff_id"`
	LeaveTypeCode      string         `json:"leave_type_code"`
	RequestedOn        string         `json:"requested_on"`
	ApprovalStatusCode string         `json:"approval_status_code"`
	PeriodStart        string         `json:"period_start"`
	PeriodEnd          string         `json:"period_end"`
	Quantity           normalize.Text `json:"quantity"`
	Note               string         `json:"note"`
}

type DeleteUsageRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

type SummaryResponse struct {
	StaffID            string `json:"staff_id"`
	StaffName          string `json:"staff_name"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	TotalEntitlement   string `json:"total_entitlement"`
	ServiceEntitlement string `json:"service_entitlement"`
	Total              string `json:"total"`
	Used               string `json:"used"`
	Remaining          string `json:"remaining"`
}

type UsageEntryResponse struct {
	ID                 int64  `json:"id"`
	StaffID            string `json:"staff_id"`
	LeaveTypeCode      string `json:"leave_type_code"`
	LeaveTypeName      string `json:"leave_type_name"`
	RequestedOn        string `json:"requested_on"`
	ApprovalStatusCode string `json:"approval_status_code"`
	ApprovalStatusName string `json:"approval_status_name"`
	ApprovalStatus     string `json:"approval_status"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	Quantity           string `json:"quantity"`
	Note               string `json:"note"`
	LastEditorID       string `json:"last_editor_id"`
	LastEditedAt       string `json:"last_edited_at,omitempty"`
}

type DeleteUsageResponse struct {
	Deleted bool `json:"deleted"`
}
