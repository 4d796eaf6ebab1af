package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type CarRequestHandler struct {
	Repo *repository.CarRequestRepository
}

func NewCarRequestHandler(repo *repository.CarRequestRepository) *CarRequestHandler {
	return &CarRequestHandler{Repo: repo}
}

func (h *CarRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/car-requests", h.List)
	rg.GET("/car-requests/:id", h.GetByID)
	rg.POST("/car-requests", h.Create)
	rg.PUT("/car-requests/:id", h.Update)
	rg.DELETE("/car-requests/:id", h.Delete)
}

func (h *CarRequestHandler) List(c *gin.Context) {
	reqs, err := h.Repo.List(c.Request.Context(), repository.CarRequestFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if reqs == nil {
		reqs = []model.CarRequest{}
	}
	respondData(c, http.StatusOK, reqs)
}

func (h *CarRequestHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Car request not found")
		return
	}
	cr, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Car request not found")
		return
	}
	respondData(c, http.StatusOK, cr)
}

type createCarRequestRequest struct {
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerPhone     string  `json:"customer_phone"`
	VehicleBrand      string  `json:"vehicle_brand"`
	VehicleModel      string  `json:"vehicle_model"`
	YearMin           int     `json:"year_min"`
	YearMax           int     `json:"year_max"`
	BudgetMin         float64 `json:"budget_min"`
	BudgetMax         float64 `json:"budget_max"`
	PreferredCategory string  `json:"preferred_category"`
	Notes             string  `json:"notes"`
}

func (h *CarRequestHandler) Create(c *gin.Context) {
	var req createCarRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	cr := model.CarRequest{
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		VehicleBrand:      req.VehicleBrand,
		VehicleModel:      req.VehicleModel,
		YearMin:           req.YearMin,
		YearMax:           req.YearMax,
		BudgetMin:         req.BudgetMin,
		BudgetMax:         req.BudgetMax,
		PreferredCategory: req.PreferredCategory,
		Notes:             req.Notes,
	}
	if err := h.Repo.Create(c.Request.Context(), &cr); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, cr)
}

func (h *CarRequestHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Car request not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	cr, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Car request not found")
		return
	}
	respondData(c, http.StatusOK, cr)
}

func (h *CarRequestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Car request not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Car request not found")
		return
	}
	respondSuccess(c)
}
