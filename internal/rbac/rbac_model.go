package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Subjects are user ids grouped into roles per tenant. Policies with domain
// "*" apply to every tenant.
const modelText = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && (p.dom == "*" || r.dom == p.dom) && r.obj == p.obj && r.act == p.act
`

const AnyTenant = "*"

// DefaultPolicies grant the ledger screens to the built-in roles.
var DefaultPolicies = []RolePermissionRow{
	{Role: "admin", Resource: "out-manage", Action: "read"},
	{Role: "admin", Resource: "out-manage", Action: "write"},
	{Role: "admin", Resource: "out-manage-time", Action: "read"},
	{Role: "admin", Resource: "out-manage-time", Action: "write"},
	{Role: "manager", Resource: "out-manage", Action: "read"},
	{Role: "manager", Resource: "out-manage-time", Action: "read"},
	{Role: "manager", Resource: "out-manage-time", Action: "write"},
	{Role: "viewer", Resource: "out-manage", Action: "read"},
	{Role: "viewer", Resource: "out-manage-time", Action: "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
