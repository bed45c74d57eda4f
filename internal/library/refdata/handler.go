package refdata

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

// Perms names the permission required for each route of one entity.
type Perms struct {
	Read   string
	Create string
	Update string
	Delete string
}

// Handler exposes the shared CRUD surface for one reference-data entity.
// Decoding request bodies stays per-entity through the two decode funcs.
type Handler[T any] struct {
	svc          *Service[T]
	decodeCreate func(*gin.Context) (*T, error)
	decodeUpdate func(*gin.Context) (map[string]any, error)
}

func RegisterRoutes[T any](
	r *gin.RouterGroup,
	path string,
	svc *Service[T],
	perms Perms,
	perm func(string) gin.HandlerFunc,
	decodeCreate func(*gin.Context) (*T, error),
	decodeUpdate func(*gin.Context) (map[string]any, error),
) {
	h := &Handler[T]{svc: svc, decodeCreate: decodeCreate, decodeUpdate: decodeUpdate}
	g := r.Group(path)
	g.GET("", perm(perms.Read), h.List)
	g.GET("/:id", perm(perms.Read), h.Get)
	g.POST("", perm(perms.Create), h.Create)
	g.PUT("/:id", perm(perms.Update), h.Update)
	g.DELETE("/:id", perm(perms.Delete), h.Delete)
}

func (h *Handler[T]) List(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", strconv.Itoa(config.DefaultPaginationLimit))
	field := c.Query("filter_field")
	value := c.Query("filter_value")

	var err error
	var env any
	if field != "" {
		env, err = h.svc.Filter(c.Request.Context(), field, value, page, limit)
	} else {
		env, err = h.svc.GetAll(c.Request.Context(), page, limit)
	}
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler[T]) Get(c *gin.Context) {
	rec, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler[T]) Create(c *gin.Context) {
	rec, err := h.decodeCreate(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	created, err := h.svc.Create(c.Request.Context(), rec)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler[T]) Update(c *gin.Context) {
	updates, err := h.decodeUpdate(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler[T]) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
