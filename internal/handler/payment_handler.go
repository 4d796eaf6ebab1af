package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type PaymentHandler struct {
	Repo *repository.PaymentRepository
}

func NewPaymentHandler(repo *repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{Repo: repo}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments", h.List)
	rg.GET("/payments/:id", h.GetByID)
	rg.POST("/payments", h.Create)
	rg.PUT("/payments/:id", h.Update)
	rg.DELETE("/payments/:id", h.Delete)
}

// GET /api/payments?ad_id=&dealer_id=&status=
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Repo.List(c.Request.Context(), repository.PaymentFilter{
		AdID:     c.Query("ad_id"),
		DealerID: c.Query("dealer_id"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	respondData(c, http.StatusOK, payments)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Payment not found")
		return
	}
	payment, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Payment not found")
		return
	}
	respondData(c, http.StatusOK, payment)
}

type createPaymentRequest struct {
	AdID          int64   `json:"ad_id"`
	DealerID      int64   `json:"dealer_id"`
	DealerName    string  `json:"dealer_name"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	DurationDays  int     `json:"duration_days"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		req.Status = "pending"
	}
	if req.DurationDays == 0 {
		req.DurationDays = 30
	}

	payment := model.Payment{
		AdID:          req.AdID,
		DealerID:      req.DealerID,
		DealerName:    req.DealerName,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		DurationDays:  req.DurationDays,
	}
	if err := h.Repo.Create(c.Request.Context(), &payment); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Payment not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	payment, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Payment not found")
		return
	}
	respondData(c, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Payment not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Payment not found")
		return
	}
	respondSuccess(c)
}
