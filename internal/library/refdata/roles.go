package refdata

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

type permissionRequest struct {
	Permission string `json:"permission" binding:"required"`
}

// registerRolePermissionRoutes adds the grant/revoke endpoints that go
// beyond plain role CRUD.
func registerRolePermissionRoutes(r *gin.RouterGroup, svc *Service[model.Role], perm func(string) gin.HandlerFunc) {
	g := r.Group("/roles/:id/permissions")
	g.POST("", perm(config.PermAddPermissionToRole), addPermission(svc))
	g.DELETE("/:permission", perm(config.PermRemovePermissionRole), removePermission(svc))
}

func addPermission(svc *Service[model.Role]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req permissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		if !slices.Contains(config.AllPermissions(), req.Permission) {
			httpx.Error(c, apierr.NotFound("permission"))
			return
		}
		role, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if slices.Contains(role.Permissions, req.Permission) {
			httpx.Error(c, apierr.AlreadyExists("permission"))
			return
		}
		perms := append([]string(role.Permissions), req.Permission)
		updated, err := svc.Store().Update(c.Request.Context(), role.ID, map[string]any{
			"permissions": datatypes.NewJSONSlice(perms),
		})
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removePermission(svc *Service[model.Role]) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("permission")
		role, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		idx := slices.Index([]string(role.Permissions), name)
		if idx < 0 {
			httpx.Error(c, apierr.NotFound("permission"))
			return
		}
		perms := slices.Delete([]string(role.Permissions), idx, idx+1)
		updated, err := svc.Store().Update(c.Request.Context(), role.ID, map[string]any{
			"permissions": datatypes.NewJSONSlice(perms),
		})
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
