package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

type SocialMediaHandler struct {
	Repo *repository.SocialMediaRepository
}

func NewSocialMediaHandler(repo *repository.SocialMediaRepository) *SocialMediaHandler {
	return &SocialMediaHandler{Repo: repo}
}

func (h *SocialMediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/social-media", h.List)
	rg.GET("/social-media/:id", h.GetByID)
	rg.POST("/social-media", h.Create)
	rg.PUT("/social-media/:id", h.Update)
	rg.DELETE("/social-media/:id", h.Delete)
}

// GET /api/social-media?platform=&status=&ad_id=
func (h *SocialMediaHandler) List(c *gin.Context) {
	posts, err := h.Repo.List(c.Request.Context(), repository.SocialMediaFilter{
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
		AdID:     c.Query("ad_id"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if posts == nil {
		posts = []model.SocialMediaPost{}
	}
	respondData(c, http.StatusOK, posts)
}

func (h *SocialMediaHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Social media post not found")
		return
	}
	post, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Social media post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

type createSocialMediaRequest struct {
	Platform    string     `json:"platform"`
	AdID        *int64     `json:"ad_id"`
	PostTitle   string     `json:"post_title"`
	PostContent string     `json:"post_content"`
	PostURL     string     `json:"post_url"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (h *SocialMediaHandler) Create(c *gin.Context) {
	var req createSocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		req.Status = "draft"
	}

	post := model.SocialMediaPost{
		Platform:    req.Platform,
		AdID:        req.AdID,
		PostTitle:   req.PostTitle,
		PostContent: req.PostContent,
		PostURL:     req.PostURL,
		Status:      req.Status,
		ScheduledAt: req.ScheduledAt,
	}
	if err := h.Repo.Create(c.Request.Context(), &post); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, post)
}

func (h *SocialMediaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Social media post not found")
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	post, err := h.Repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondStoreError(c, err, "Social media post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

func (h *SocialMediaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Social media post not found")
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Social media post not found")
		return
	}
	respondSuccess(c)
}
