package plans

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

	r.GET("/active_plans", perm(config.PermReadActivePlan), h.List)
	r.GET("/active_plans/:id", perm(config.PermReadActivePlan), h.Get)
	r.POST("/active_plans", perm(config.PermCreateActivePlan), h.Create)
	r.PUT("/active_plans/:id", perm(config.PermUpdateActivePlan), h.Update)
	r.PUT("/active_plans/:id/cancel", perm(config.PermCancelActivePlan), h.Cancel)
	r.PUT("/active_plans/:id/finish", perm(config.PermFinishActivePlan), h.Finish)
	r.PUT("/active_plans/:id/renew", perm(config.PermRenewActivePlan), h.Renew)
	r.DELETE("/active_plans/:id", perm(config.PermDeleteActivePlan), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", strconv.Itoa(config.DefaultPaginationLimit))

	var (
		env any
		err error
	)
	if field := c.Query("filter_field"); field != "" {
		env, err = h.svc.Filter(c.Request.Context(), field, c.Query("filter_value"), page, limit)
	} else {
		env, err = h.svc.GetAll(c.Request.Context(), page, limit)
	}
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateActivePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	plan, err := req.ActivePlan()
	if err != nil {
		httpx.BadRequest(c, "invalid return_date")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), plan)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateActivePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json")
		return
	}
	updates, err := req.Updates()
	if err != nil {
		httpx.BadRequest(c, "invalid return_date")
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Cancel(c *gin.Context) {
	p, err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Finish(c *gin.Context) {
	p, err := h.svc.Finish(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Renew(c *gin.Context) {
	p, err := h.svc.Renew(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	p, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
