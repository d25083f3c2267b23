package tenant

import "gorm.io/gorm"

// Scope restricts a query to one tenant. Every ledger table carries tenant_id.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ScopeAlias is Scope for queries that alias the tenant-owned table.
func ScopeAlias(alias, tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".tenant_id = ?", tenantID)
	}
}
