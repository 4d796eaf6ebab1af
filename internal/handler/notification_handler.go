package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type NotificationHandler struct {
	Repo *repository.NotificationRepository
}

func NewNotificationHandler(repo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/:id", h.GetByID)
	rg.POST("/notifications", h.Create)
	rg.PUT("/notifications/:id", h.Update)
	rg.PUT("/notifications/mark-all-read/:user_id", h.MarkAllRead)
	rg.DELETE("/notifications/:id", h.Delete)
}

// GET /api/notifications?user_id=&is_read=&type=
func (h *NotificationHandler) List(c *gin.Context) {
	filter := repository.NotificationFilter{
		UserID: c.Query("user_id"),
		Type:   c.Query("type"),
	}
	if v, ok := c.GetQuery("is_read"); ok {
		isRead := v == "true"
		filter.IsRead = &isRead
	}

	notes, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if notes == nil {
		notes = []model.Notification{}
	}
	respondData(c, http.StatusOK, notes)
}

func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Notification not found")
		return
	}
	note, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Notification not found")
		return
	}
	respondData(c, http.StatusOK, note)
}

type createNotificationRequest struct {
	UserID  int64  `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Type == "" {
		req.Type = "info"
	}

	note := model.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Link:    req.Link,
	}
	if err := h.Repo.Create(c.Request.Context(), &note); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, note)
}

// PUT /api/notifications/:id. The only mutable field is is_read; a body
// without it updates nothing.
func (h *NotificationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Notification not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	isRead, ok := fields["is_read"].(bool)
	if !ok {
		respondError(c, http.StatusBadRequest, "No fields to update")
		return
	}
	note, err := h.Repo.MarkRead(c.Request.Context(), id, isRead)
	if err != nil {
		respondStoreError(c, err, "Notification not found")
		return
	}
	respondData(c, http.StatusOK, note)
}

// PUT /api/notifications/mark-all-read/:user_id. Succeeds even when the
// user has no unread notifications.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.Repo.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondSuccess(c)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Notification not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Notification not found")
		return
	}
	respondSuccess(c)
}
