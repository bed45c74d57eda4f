package seed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

func RegisterRoutes(r *gin.RouterGroup, im *Importer, perm func(string) gin.HandlerFunc) {
	r.POST("/import", perm(config.PermImportDefaultData), func(c *gin.Context) {
		if err := im.Run(c.Request.Context()); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"imported": true})
	})
}
