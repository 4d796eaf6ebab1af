package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// AdHandler serves the vehicle-ad CRUD endpoints.
type AdHandler struct {
	Repo *repository.AdRepository
}

func NewAdHandler(repo *repository.AdRepository) *AdHandler {
	return &AdHandler{Repo: repo}
}

func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ads", h.List)
	rg.GET("/ads/:id", h.GetByID)
	rg.POST("/ads", h.Create)
	rg.PUT("/ads/:id", h.Update)
	rg.DELETE("/ads/:id", h.Delete)
}

// GET /api/ads?status=&search=
func (h *AdHandler) List(c *gin.Context) {
	ads, err := h.Repo.List(c.Request.Context(), repository.AdFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if ads == nil {
		ads = []model.Ad{}
	}
	respondData(c, http.StatusOK, ads)
}

// GET /api/ads/:id
func (h *AdHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ad not found")
		return
	}
	ad, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Ad not found")
		return
	}
	respondData(c, http.StatusOK, ad)
}

type createAdRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Category    string  `json:"category"`
	DealerID    int64   `json:"dealer_id"`
	DealerName  string  `json:"dealer_name"`
}

// POST /api/ads
func (h *AdHandler) Create(c *gin.Context) {
	var req createAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	ad := model.Ad{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Category:    req.Category,
		DealerID:    req.DealerID,
		DealerName:  req.DealerName,
	}
	if err := h.Repo.Create(c.Request.Context(), &ad); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, ad)
}

// PUT /api/ads/:id. Only body-present fields change.
func (h *AdHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ad not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	ad, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Ad not found")
		return
	}
	respondData(c, http.StatusOK, ad)
}

// DELETE /api/ads/:id
func (h *AdHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ad not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Ad not found")
		return
	}
	respondSuccess(c)
}
