package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/middleware"
	"github.com/medsched/hospital-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	caller := middleware.Caller(c)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", caller.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
