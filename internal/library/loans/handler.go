package loans

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

	r.GET("/loans", perm(config.PermReadLoan), h.List)
	r.GET("/loans/:id", perm(config.PermReadLoan), h.Get)
	r.POST("/loans", perm(config.PermCreateLoan), h.Create)
	r.PUT("/loans/:id", perm(config.PermUpdateLoan), h.Update)
	r.PUT("/loans/:id/renew", perm(config.PermRenewLoan), h.Renew)
	r.PUT("/loans/:id/finish", perm(config.PermFinishLoan), h.Finish)
	r.DELETE("/loans/:id", perm(config.PermDeleteLoan), h.Delete)
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
	l, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	loan, err := req.Loan()
	if err != nil {
		httpx.BadRequest(c, "invalid return_date")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), loan)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json")
		return
	}
	updates, err := req.Updates()
	if err != nil {
		httpx.BadRequest(c, "invalid return_date")
		return
	}
	l, err := h.svc.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) Renew(c *gin.Context) {
	l, err := h.svc.Renew(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) Finish(c *gin.Context) {
	l, err := h.svc.Finish(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) Delete(c *gin.Context) {
	l, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}
