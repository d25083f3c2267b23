package outmanage

import (
	"ssms/internal/middleware"

	"github.com/gin-gonic/gin"
)

const resource = "out-manage"

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	contracts := r.Group("/out-manage")
	{
		contracts.GET("", middleware.RBACAuthorize(rbacService, resource, "read"), handler.Search)
		contracts.GET("/duplicates", middleware.RBACAuthorize(rbacService, resource, "read"), handler.CheckDuplicate)
		contracts.POST("", middleware.RBACAuthorize(rbacService, resource, "write"), handler.Create)
		contracts.PUT("/:staff_id/:period_start", middleware.RBACAuthorize(rbacService, resource, "write"), handler.Update)
		contracts.POST("/bulk-delete", middleware.RBACAuthorize(rbacService, resource, "write"), handler.BulkDelete)
	}
}
