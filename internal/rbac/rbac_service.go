package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type EnforceRequest struct {
	UserID   string
	TenantID string
	Role     string
	Resource string
	Action   string
}

type Service interface {
	LoadTenantPolicy(ctx context.Context, tenantID string) error
	Enforce(ctx context.Context, req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadTenantPolicy(ctx context.Context, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadTenantPolicyUnlocked(ctx, tenantID)
}

// loadTenantPolicyUnlocked replaces the enforcer policy with the built-in
// role grants plus the rows stored for tenantID.
func (s *service) loadTenantPolicyUnlocked(ctx context.Context, tenantID string) error {
	s.enforcer.ClearPolicy()

	for _, p := range DefaultPolicies {
		if _, err := s.enforcer.AddPolicy(p.Role, AnyTenant, p.Resource, p.Action); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, tenantID)
	if err != nil {
		return err
	}
	s.logger.Debug("rbac load policy", zap.String("tenant_id", tenantID), zap.Int("role_permissions", len(rolePerms)))

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.Role, tenantID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}
	// Drops role links left in the role manager by earlier requests.
	return s.enforcer.BuildRoleLinks()
}

func (s *service) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadTenantPolicyUnlocked(ctx, req.TenantID); err != nil {
		return false, err
	}
	if req.Role != "" {
		if _, err := s.enforcer.AddGroupingPolicy(req.UserID, req.Role, req.TenantID); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.TenantID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("tenant_id", req.TenantID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("tenant_id", req.TenantID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
