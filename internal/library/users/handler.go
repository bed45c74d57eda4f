package users

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r *gin.RouterGroup, svc *Service, perm func(string) gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.GET("/users", perm(config.PermReadUser), h.List)
	r.GET("/users/:id", perm(config.PermReadUser), h.Get)
	r.POST("/users", perm(config.PermCreateUser), h.Create)
	r.PUT("/users/:id", perm(config.PermUpdateUser), h.Update)
	r.DELETE("/users/:id", perm(config.PermDeleteUser), h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	u, err := h.svc.Create(c.Request.Context(), userFromRequest(req), req.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
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
	u, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json")
		return
	}
	u, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Updates())
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Delete(c *gin.Context) {
	u, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func userFromRequest(req CreateUserRequest) *model.User {
	u := &model.User{
		Username:  req.Username,
		Name:      req.Name,
		LastName:  req.LastName,
		Email:     req.Email,
		Biography: req.Biography,
		GenderID:  req.Gender,
		UserImg:   req.UserImg,
		RoleID:    req.Role,
	}
	if d, err := time.Parse("2006-01-02", req.Birthdate); err == nil {
		u.Birthdate = &d
	}
	return u
}
