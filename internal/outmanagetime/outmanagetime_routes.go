package outmanagetime

import (
	"ssms/internal/middleware"

	"github.com/gin-gonic/gin"
)

const resource = "out-manage-time"

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	usages := r.Group("/out-manage-time")
	{
		usages.GET("/summary", middleware.RBACAuthorize(rbacService, resource, "read"), handler.Summary)
		usages.GET("/details", middleware.RBACAuthorize(rbacService, resource, "read"), handler.Details)
		usages.POST("/details", middleware.RBACAuthorize(rbacService, resource, "write"), handler.Save)
		usages.POST("/details/bulk-delete", middleware.RBACAuthorize(rbacService, resource, "write"), handler.BulkDelete)
	}
}
