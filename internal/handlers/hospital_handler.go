package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/audit"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/httpresp"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	"github.com/medsched/hospital-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type HospitalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewHospitalHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *HospitalHandler {
	return &HospitalHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type HospitalRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *HospitalHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanManageHospitals() {
		httperr.Forbidden(c, "forbidden", "Hospital administration is restricted.")
		return
	}

	var hospitals []models.Hospital
	if err := h.db.Order("name ASC").Find(&hospitals).Error; err != nil {
		httperr.Internal(c, "failed_to_load_hospitals", "Could not load hospitals.")
		return
	}

	// user_count is derived, never stored.
	for i := range hospitals {
		h.db.Model(&models.Profile{}).
			Where("hospital = ?", hospitals[i].Name).
			Count(&hospitals[i].UserCount)
	}

	httpresp.List(c, hospitals)
}

// ======================================================
// CREATE
// ======================================================

func (h *HospitalHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanManageHospitals() {
		httperr.Forbidden(c, "forbidden", "Hospital administration is restricted.")
		return
	}

	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	hospital := models.Hospital{Name: req.Name}
	if err := h.db.Create(&hospital).Error; err != nil {
		httperr.Internal(c, "failed_to_create_hospital", "Could not create the hospital.")
		return
	}

	h.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionCreate,
		TableName: "hospitals",
		RecordID:  hospital.ID,
		NewData:   map[string]any{"name": hospital.Name},
	})

	c.JSON(201, hospital)
}

// ======================================================
// UPDATE
// ======================================================

func (h *HospitalHandler) Update(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanManageHospitals() {
		httperr.Forbidden(c, "forbidden", "Hospital administration is restricted.")
		return
	}

	id := c.Param("id")

	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var hospital models.Hospital
	if err := h.db.First(&hospital, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital not found.")
		return
	}

	oldName := hospital.Name
	hospital.Name = req.Name

	if err := h.db.Save(&hospital).Error; err != nil {
		httperr.Internal(c, "failed_to_update_hospital", "Could not update the hospital.")
		return
	}

	h.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionUpdate,
		TableName: "hospitals",
		RecordID:  hospital.ID,
		OldData:   map[string]any{"name": oldName},
		NewData:   map[string]any{"name": hospital.Name},
	})

	c.JSON(200, hospital)
}

// ======================================================
// DELETE
// ======================================================

func (h *HospitalHandler) Delete(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanManageHospitals() {
		httperr.Forbidden(c, "forbidden", "Hospital administration is restricted.")
		return
	}

	id := c.Param("id")

	var hospital models.Hospital
	if err := h.db.First(&hospital, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital not found.")
		return
	}

	if err := h.db.Delete(&hospital).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_hospital", "Could not delete the hospital.")
		return
	}

	h.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionDelete,
		TableName: "hospitals",
		RecordID:  hospital.ID,
		OldData:   map[string]any{"name": hospital.Name},
	})

	c.JSON(200, gin.H{"deleted": hospital.ID})
}
