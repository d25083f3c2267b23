package app

import (
	"database/sql"

	"ssms/internal/audit"
	"ssms/internal/code"
	"ssms/internal/config"
	"ssms/internal/outmanage"
	"ssms/internal/outmanagetime"
	"ssms/internal/rbac"
	"ssms/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	api *gin.RouterGroup,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	auditLog audit.Logger,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	codeRepo := code.NewRepository(gormDB)
	contractRepo := outmanage.NewRepository(gormDB)
	usageRepo := outmanagetime.NewRepository(gormDB)
	staffDir := staff.NewDirectory(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	codeLookup := code.NewLookup(codeRepo, rdb, logger)
	contractService := outmanage.NewService(db, contractRepo, staffDir, auditLog,
		outmanage.Options{StrictOverlap: cfg.Ledger.StrictOverlap}, logger)
	usageService := outmanagetime.NewService(usageRepo, codeLookup, auditLog, logger)

	// --- Handlers ---
	contractHandler := outmanage.NewHandler(contractService, logger)
	usageHandler := outmanagetime.NewHandler(usageService, logger)

	// --- Routes Registration ---
	outmanage.RegisterRoutes(api, contractHandler, rbacService)
	outmanagetime.RegisterRoutes(api, usageHandler, rbacService)

	return nil
}
