package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// SettingHandler serves the key-addressed settings store. POST is an
// upsert; the other verbs address rows by :key.
type SettingHandler struct {
	Repo *repository.SettingRepository
}

func NewSettingHandler(repo *repository.SettingRepository) *SettingHandler {
	return &SettingHandler{Repo: repo}
}

func (h *SettingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.List)
	rg.GET("/settings/:key", h.GetByKey)
	rg.POST("/settings", h.Upsert)
	rg.PUT("/settings/:key", h.Update)
	rg.DELETE("/settings/:key", h.Delete)
}

// GET /api/settings?category=
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.Repo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if settings == nil {
		settings = []model.Setting{}
	}
	respondData(c, http.StatusOK, settings)
}

func (h *SettingHandler) GetByKey(c *gin.Context) {
	setting, err := h.Repo.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondStoreError(c, err, "Setting not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

type upsertSettingRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// POST /api/settings. Insert or replace on key conflict.
func (h *SettingHandler) Upsert(c *gin.Context) {
	var req upsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Type == "" {
		req.Type = "string"
	}

	setting := model.Setting{
		Key:         req.Key,
		Value:       req.Value,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.Repo.Upsert(c.Request.Context(), &setting); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, setting)
}

func (h *SettingHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	setting, err := h.Repo.Update(c.Request.Context(), c.Param("key"), fields)
	if err != nil {
		respondStoreError(c, err, "Setting not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondStoreError(c, err, "Setting not found")
		return
	}
	respondSuccess(c)
}
