package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// Every success is {"data": ...}, every failure {"error": "..."}. Deletes
// and bulk updates answer with a bare {"success": true}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondStoreError maps repository sentinels onto 400/404 and surfaces
// anything else as a 500 with the raw message. Acceptable for an internal
// admin tool.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNoFields):
		respondError(c, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
