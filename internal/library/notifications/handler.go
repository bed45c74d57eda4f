package notifications

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

	r.GET("/notifications", perm(config.PermReadNotification), h.List)
	r.GET("/notifications/:id", perm(config.PermReadNotification), h.Get)
	r.POST("/notifications", perm(config.PermCreateNotification), h.Create)
	r.POST("/notifications/broadcast", perm(config.PermCreateNotificationForAll), h.Broadcast)
	r.PUT("/notifications/:id", perm(config.PermUpdateNotification), h.Update)
	r.PUT("/notifications/:id/read", perm(config.PermMarkNotificationAsRead), h.MarkAsRead)
	r.DELETE("/notifications/:id", perm(config.PermDeleteNotification), h.Delete)
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
	n, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	n, err := h.svc.Create(c.Request.Context(), req.Notification())
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handler) Broadcast(c *gin.Context) {
	var req BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json or missing required fields")
		return
	}
	created, err := h.svc.CreateForAllUsers(c.Request.Context(), req.Sender, req.Title, req.Message, req.NotificationType)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": created})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid json")
		return
	}
	n, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Updates())
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	n, err := h.svc.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) Delete(c *gin.Context) {
	n, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
