package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type SupportTicketHandler struct {
	Repo *repository.SupportTicketRepository
}

func NewSupportTicketHandler(repo *repository.SupportTicketRepository) *SupportTicketHandler {
	return &SupportTicketHandler{Repo: repo}
}

func (h *SupportTicketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/support-tickets", h.List)
	rg.GET("/support-tickets/:id", h.GetByID)
	rg.POST("/support-tickets", h.Create)
	rg.PUT("/support-tickets/:id", h.Update)
	rg.DELETE("/support-tickets/:id", h.Delete)
}

// GET /api/support-tickets?status=&priority=&category=&search=
func (h *SupportTicketHandler) List(c *gin.Context) {
	tickets, err := h.Repo.List(c.Request.Context(), repository.SupportTicketFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if tickets == nil {
		tickets = []model.SupportTicket{}
	}
	respondData(c, http.StatusOK, tickets)
}

func (h *SupportTicketHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Support ticket not found")
		return
	}
	ticket, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Support ticket not found")
		return
	}
	respondData(c, http.StatusOK, ticket)
}

type createSupportTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	UserID      *int64 `json:"user_id"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

func (h *SupportTicketHandler) Create(c *gin.Context) {
	var req createSupportTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	ticket := model.SupportTicket{
		TicketNumber: fmt.Sprintf("TKT-%s", uuid.NewString()[:8]),
		Subject:      req.Subject,
		Description:  req.Description,
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		Priority:     req.Priority,
		Category:     req.Category,
	}
	if err := h.Repo.Create(c.Request.Context(), &ticket); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, ticket)
}

func (h *SupportTicketHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Support ticket not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	ticket, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Support ticket not found")
		return
	}
	respondData(c, http.StatusOK, ticket)
}

func (h *SupportTicketHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Support ticket not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Support ticket not found")
		return
	}
	respondSuccess(c)
}
