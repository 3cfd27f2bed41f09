package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/httpresp"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	ucAppointment "github.com/medsched/hospital-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	statusUC *ucAppointment.ChangeStatus
	attendUC *ucAppointment.AttendAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	statusUC *ucAppointment.ChangeStatus,
	attendUC *ucAppointment.AttendAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		statusUC: statusUC,
		attendUC: attendUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Purpose   string `json:"purpose"`
	Specialty string `json:"specialty"`

	Hospital string `json:"hospital"`
	Clinic   string `json:"clinic"`

	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Occupation      string `json:"occupation"`
	HasInsurance    bool   `json:"has_insurance"`
	InsuranceNumber string `json:"insurance_number"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CompleteAttendRequest struct {
	// nil means the caller explicitly declined a review.
	ReviewDate *string `json:"review_date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), caller, ucAppointment.CreateAppointmentInput{
		PatientID:   req.PatientID,
		PatientName: req.PatientName,

		Date: req.Date,
		Time: req.Time,

		Purpose:   req.Purpose,
		Specialty: req.Specialty,

		Hospital: req.Hospital,
		Clinic:   req.Clinic,

		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		Occupation:      req.Occupation,
		HasInsurance:    req.HasInsurance,
		InsuranceNumber: req.InsuranceNumber,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)

	aps, err := h.listUC.Execute(c.Request.Context(), caller, ucAppointment.ListAppointmentsInput{
		Status:   c.DefaultQuery("status", "all"),
		Range:    c.DefaultQuery("range", "all"),
		Hospital: c.Query("hospital"),
		Clinic:   c.Query("clinic"),
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_load_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATUS CHANGE
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	caller := middleware.Caller(c)
	id := c.Param("id")

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_update_status", "Could not update the appointment.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// TWO-PHASE ATTEND
// ======================================================

func (h *AppointmentHandler) BeginAttend(c *gin.Context) {
	caller := middleware.Caller(c)
	id := c.Param("id")

	decision, err := h.attendUC.Begin(c.Request.Context(), caller, id)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_begin_attend", "Could not start the attend flow.")
		return
	}

	c.JSON(200, decision)
}

func (h *AppointmentHandler) CompleteAttend(c *gin.Context) {
	caller := middleware.Caller(c)
	id := c.Param("id")

	var req CompleteAttendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.attendUC.Complete(c.Request.Context(), caller, id, req.ReviewDate)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_complete_attend", "Could not update the appointment.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// ERRORS
// ======================================================

// Business violations surface with their own code; anything else is a
// generic persistence failure and the client keeps its last-known set.
func writeUsecaseError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be httperr.BusinessError
	if httperr.AsBusiness(err, &be) {
		if be.Code == "appointment_not_found" {
			httperr.NotFound(c, be.Code, "Appointment not found.")
			return
		}
		httperr.BadRequest(c, be.Code, "Request rejected.")
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMessage)
}
