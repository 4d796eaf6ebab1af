package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/auth"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/middleware"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// AuthHandler implements admin login with bcrypt hashes and signed JWTs.
type AuthHandler struct {
	Repo     *repository.AdminRepository
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthHandler(repo *repository.AdminRepository, secret []byte, ttl time.Duration) *AuthHandler {
	return &AuthHandler{Repo: repo, Secret: secret, TokenTTL: ttl}
}

// RegisterRoutes mounts the open login/logout routes on rg and the
// token-guarded profile routes behind the JWT middleware.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)

	protected := rg.Group("/auth")
	protected.Use(middleware.JWTAuthMiddleware(h.Secret))
	protected.GET("/me", h.Me)
	protected.PUT("/update-profile", h.UpdateProfile)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := h.Repo.GetActiveByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.Repo.TouchLastLogin(c.Request.Context(), admin.ID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := auth.GenerateToken(admin.ID, h.Secret, h.TokenTTL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"admin": admin,
		"token": token,
	})
}

// POST /api/auth/logout. Tokens are stateless, nothing to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID := c.GetInt64(middleware.AdminIDKey)

	admin, err := h.Repo.GetActiveByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, admin)
}

// PUT /api/auth/update-profile. Presence-based partial update of the
// caller's own profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	adminID := c.GetInt64(middleware.AdminIDKey)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	admin, err := h.Repo.UpdateProfile(c.Request.Context(), adminID, fields)
	if err != nil {
		respondStoreError(c, err, "Admin not found")
		return
	}
	respondData(c, http.StatusOK, admin)
}
