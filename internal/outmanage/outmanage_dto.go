package outmanage

import "ssms/internal/shared/normalize"

type SearchContractRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	AsOf     string `form:"as_of"`
	Name     string `form:"name"`
}

// Paging returns the page and page size actually queried: page defaults to
// 1, size to 10 and is capped at 100.
func (r SearchContractRequest) Paging() (page, pageSize int) {
	page = r.Page
	if page < 1 {
		page = 1
	}
	pageSize = r.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

type DuplicateCheckRequest struct {
	StaffID             string `form:"staff_id"`
	PeriodStart         string `form:"period_start"`
	PeriodEnd           string `form:"period_end"`
	OriginalPeriodStart string `form:"original_period_start"`
}

type CreateContractRequest struct {
	StaffID            string         `json:"staff_id" binding:"max=20"`
	PeriodStart        string         `json:"period_start"`
	PeriodEnd          string         `json:"period_end"`
	TotalEntitlement   normalize.Text `json:"total_entitlement"`
	ServiceEntitlement normalize.Text `json:"service_entitlement"`
	Note               string         `json:"note"`
}

// UpdateContractRequest carries the new values plus the key the row is
// currently stored under. OriginalPeriodStart defaults to PeriodStart.
type UpdateContractRequest struct {
	StaffID             string         `json:"staff_id"`
	OriginalPeriodStart string         `json:"original_period_start"`
	PeriodStart         string         `json:"period_start"`
	PeriodEnd           string         `json:"period_end"`
	TotalEntitlement    normalize.Text `json:"total_entitlement"`
	ServiceEntitlement  normalize.Text `json:"service_entitlement"`
	Note                string         `json:"note"`
}

type ContractKey struct {
	StaffID     string `json:"staff_id" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"`
}

type DeleteContractsRequest struct {
	Keys []ContractKey `json:"keys" binding:"required,min=1,dive"`
}

type ContractResponse struct {
	StaffID            string `json:"staff_id"`
	StaffName          string `json:"staff_name"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	TotalEntitlement   string `json:"total_entitlement"`
	ServiceEntitlement string `json:"service_entitlement"`
	Note               string `json:"note"`
	LastEditorID       string `json:"last_editor_id"`
	LastEditedAt       string `json:"last_edited_at,omitempty"`
}

type PeriodResponse struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

// DuplicateResponse is empty (Duplicate false, no description) when the
// candidate period is free.
type DuplicateResponse struct {
	Duplicate   bool             `json:"duplicate"`
	Description string           `json:"description,omitempty"`
	Periods     []PeriodResponse `json:"periods,omitempty"`
}

type DeleteResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
