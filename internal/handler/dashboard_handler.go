package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/service"
)

// DashboardHandler is read-only except for the activity-log append.
type DashboardHandler struct {
	Repo       *repository.DashboardRepository
	Activities *repository.ActivityRepository
	Service    *service.DashboardService
}

func NewDashboardHandler(repo *repository.DashboardRepository, activities *repository.ActivityRepository, svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Repo: repo, Activities: activities, Service: svc}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/recent-ads", h.RecentAds)
	rg.GET("/dashboard/recent-requests", h.RecentRequests)
	rg.GET("/dashboard/top-dealers", h.TopDealers)
	rg.GET("/dashboard/category-distribution", h.CategoryDistribution)
	rg.GET("/dashboard/activities", h.ListActivities)
	rg.POST("/dashboard/activities", h.CreateActivity)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, stats)
}

func limitQuery(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func (h *DashboardHandler) RecentAds(c *gin.Context) {
	ads, err := h.Repo.RecentAds(c.Request.Context(), limitQuery(c, 5))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if ads == nil {
		ads = []model.Ad{}
	}
	respondData(c, http.StatusOK, ads)
}

func (h *DashboardHandler) RecentRequests(c *gin.Context) {
	reqs, err := h.Repo.RecentRequests(c.Request.Context(), limitQuery(c, 4))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if reqs == nil {
		reqs = []model.CarRequest{}
	}
	respondData(c, http.StatusOK, reqs)
}

func (h *DashboardHandler) TopDealers(c *gin.Context) {
	dealers, err := h.Repo.TopDealers(c.Request.Context(), limitQuery(c, 5))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if dealers == nil {
		dealers = []model.Dealer{}
	}
	respondData(c, http.StatusOK, dealers)
}

func (h *DashboardHandler) CategoryDistribution(c *gin.Context) {
	shares, err := h.Repo.CategoryDistribution(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if shares == nil {
		shares = []model.CategoryShare{}
	}
	respondData(c, http.StatusOK, shares)
}

func (h *DashboardHandler) ListActivities(c *gin.Context) {
	activities, err := h.Activities.Recent(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	respondData(c, http.StatusOK, activities)
}

type createActivityRequest struct {
	UserID   *int64 `json:"user_id"`
	UserName string `json:"user_name"`
	Action   string `json:"action"`
	Item     string `json:"item"`
	Type     string `json:"type"`
}

func (h *DashboardHandler) CreateActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Type == "" {
		req.Type = "info"
	}

	activity := model.Activity{
		UserID:   req.UserID,
		UserName: req.UserName,
		Action:   req.Action,
		Item:     req.Item,
		Type:     req.Type,
	}
	if err := h.Activities.Create(c.Request.Context(), &activity); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, activity)
}
