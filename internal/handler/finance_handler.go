package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/service"
)

// FinanceHandler serves finance-record CRUD plus the derived
// summary/dashboard/trend reads.
type FinanceHandler struct {
	Repo    *repository.FinanceRepository
	Service *service.FinanceService
}

func NewFinanceHandler(repo *repository.FinanceRepository, svc *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{Repo: repo, Service: svc}
}

func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/finance", h.List)
	rg.GET("/finance/summary", h.Summary)
	rg.GET("/finance/dashboard", h.Dashboard)
	rg.GET("/finance/monthly-trend", h.MonthlyTrend)
	rg.GET("/finance/:id", h.GetByID)
	rg.POST("/finance", h.Create)
	rg.PUT("/finance/:id", h.Update)
	rg.DELETE("/finance/:id", h.Delete)
}

// GET /api/finance?type=&category=&start_date=&end_date=
func (h *FinanceHandler) List(c *gin.Context) {
	records, err := h.Repo.List(c.Request.Context(), repository.FinanceFilter{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []model.FinanceRecord{}
	}
	respondData(c, http.StatusOK, records)
}

// GET /api/finance/summary?start_date=&end_date=
func (h *FinanceHandler) Summary(c *gin.Context) {
	rows, err := h.Repo.Summary(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []model.FinanceSummaryRow{}
	}
	respondData(c, http.StatusOK, rows)
}

// GET /api/finance/dashboard?period=daily|weekly|monthly|yearly
func (h *FinanceHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.Service.Dashboard(c.Request.Context(), c.DefaultQuery("period", "monthly"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dashboard)
}

// GET /api/finance/monthly-trend?months=
func (h *FinanceHandler) MonthlyTrend(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil || months <= 0 {
		months = 6
	}
	trend, err := h.Service.MonthlyTrend(c.Request.Context(), months)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, trend)
}

func (h *FinanceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Finance record not found")
		return
	}
	record, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Finance record not found")
		return
	}
	respondData(c, http.StatusOK, record)
}

type createFinanceRequest struct {
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	ReferenceID   *int64     `json:"reference_id"`
	ReferenceType string     `json:"reference_type"`
	Date          *time.Time `json:"date"`
	CreatedBy     string     `json:"created_by"`
}

func (h *FinanceHandler) Create(c *gin.Context) {
	var req createFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	record := model.FinanceRecord{
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
		Date:          date,
		CreatedBy:     req.CreatedBy,
	}
	if err := h.Repo.Create(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, record)
}

func (h *FinanceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Finance record not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	record, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Finance record not found")
		return
	}
	respondData(c, http.StatusOK, record)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Finance record not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Finance record not found")
		return
	}
	respondSuccess(c)
}
