package rbac_test

import (
	"context"
	"testing"

	"ssms/internal/rbac"
	"ssms/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetRolePermissions(t *testing.T) {
	ctx := context.Background()
	db, _ := testdb.Open(t, &rbac.RolePermissionRow{})
	require.NoError(t, db.Create(&[]rbac.RolePermissionRow{
		{TenantID: "T1", Role: "viewer", Resource: "out-manage", Action: "write"},
		{TenantID: "T2", Role: "viewer", Resource: "out-manage-time", Action: "write"},
	}).Error)

	repo := rbac.NewRepository(db)

	rows, err := repo.GetRolePermissions(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, []rbac.RolePermissionRow{
		{TenantID: "T1", Role: "viewer", Resource: "out-manage", Action: "write"},
	}, rows)

	t.Run("tenant grant widens the built-in role", func(t *testing.T) {
		enforcer, err := rbac.NewEnforcer()
		require.NoError(t, err)
		svc := rbac.NewService(repo, enforcer)

		allowed, err := svc.Enforce(ctx, rbac.EnforceRequest{
			UserID: "u1", TenantID: "T1", Role: "viewer", Resource: "out-manage", Action: "write",
		})
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = svc.Enforce(ctx, rbac.EnforceRequest{
			UserID: "u1", TenantID: "T2", Role: "viewer", Resource: "out-manage", Action: "write",
		})
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}
