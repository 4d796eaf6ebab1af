package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type DealerHandler struct {
	Repo *repository.DealerRepository
}

func NewDealerHandler(repo *repository.DealerRepository) *DealerHandler {
	return &DealerHandler{Repo: repo}
}

func (h *DealerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dealers", h.List)
	rg.GET("/dealers/:id", h.GetByID)
	rg.POST("/dealers", h.Create)
	rg.PUT("/dealers/:id", h.Update)
	rg.DELETE("/dealers/:id", h.Delete)
}

func (h *DealerHandler) List(c *gin.Context) {
	dealers, err := h.Repo.List(c.Request.Context(), repository.DealerFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if dealers == nil {
		dealers = []model.Dealer{}
	}
	respondData(c, http.StatusOK, dealers)
}

func (h *DealerHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Dealer not found")
		return
	}
	dealer, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Dealer not found")
		return
	}
	respondData(c, http.StatusOK, dealer)
}

type createDealerRequest struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Status      string `json:"status"`
}

func (h *DealerHandler) Create(c *gin.Context) {
	var req createDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	dealer := model.Dealer{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Status:      req.Status,
	}
	if err := h.Repo.Create(c.Request.Context(), &dealer); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, dealer)
}

func (h *DealerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Dealer not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	dealer, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Dealer not found")
		return
	}
	respondData(c, http.StatusOK, dealer)
}

func (h *DealerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Dealer not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Dealer not found")
		return
	}
	respondSuccess(c)
}
