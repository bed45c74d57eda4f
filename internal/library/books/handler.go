package books

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r *gin.RouterGroup, svc *Service, perm func(string) gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.GET("/books", perm(config.PermReadBook), h.List)
	r.GET("/books/latest_releases", perm(config.PermReadBook), h.LatestReleases)
	r.GET("/books/:id", perm(config.PermReadBook), h.Get)
	r.POST("/books", perm(config.PermCreateBook), h.Create)
	r.PUT("/books/:id", perm(config.PermUpdateBook), h.Update)
	r.DELETE("/books/:id", perm(config.PermDeleteBook), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", strconv.Itoa(config.DefaultPaginationLimit))
	showDuplicates := c.Query("show_duplicates") == "true"
	showLents := c.Query("show_lents") == "true"
	sortField := c.Query("sort_by")
	desc := c.Query("sort") == "desc"

	var (
		env any
		err error
	)
	if field := c.Query("filter_field"); field != "" {
		env, err = h.svc.FilterBooks(c.Request.Context(), showDuplicates, showLents, field, c.Query("filter_value"), page, limit, sortField, desc)
	} else {
		env, err = h.svc.GetAll(c.Request.Context(), showDuplicates, showLents, page, limit, sortField, desc)
	}
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) LatestReleases(c *gin.Context) {
	limit := c.DefaultQuery("limit", strconv.Itoa(config.DefaultPaginationLimit))
	env, err := h.svc.LatestReleases(c.Request.Context(), limit)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	b, err := h.svc.Create(c.Request.Context(), req.Book(), req.Authors)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json")
		return
	}
	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Updates())
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	b, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
