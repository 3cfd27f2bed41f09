package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/httpresp"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// List returns user profiles; hospital admins only see their own
// hospital.
func (h *ProfileHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanListProfiles() {
		httperr.Forbidden(c, "forbidden", "Profile listing is restricted.")
		return
	}

	q := h.db.Model(&models.Profile{})
	if caller.Role == scope.RoleHospitalAdmin {
		q = q.Where("hospital = ?", caller.Hospital)
	}

	var profiles []models.Profile
	if err := q.Order("email ASC").Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_load_profiles", "Could not load profiles.")
		return
	}

	httpresp.List(c, profiles)
}
