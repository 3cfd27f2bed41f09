package appointment

import (
	"context"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/dates"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

// ======================================================
// TWO-PHASE ATTEND
// ======================================================

// Marking an appointment attended needs a review-date decision first.
// Begin validates and returns the pending decision without touching
// storage; Complete persists status and review date together and
// audits the status field only.

type PendingReviewDecision struct {
	AppointmentID string `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	Date          string `json:"date"`
	CurrentStatus string `json:"current_status"` // UI vocabulary
}

type AttendAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewAttendAppointment(
	repo domain.Repository,
	audit Auditor,
) *AttendAppointment {
	return &AttendAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AttendAppointment) Begin(
	ctx context.Context,
	caller scope.CallerContext,
	appointmentID string,
) (*PendingReviewDecision, error) {

	ap, err := uc.getScoped(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(ap.Status, domain.UIAttended); err != nil {
		return nil, err
	}

	return &PendingReviewDecision{
		AppointmentID: ap.ID,
		PatientName:   ap.PatientName,
		Date:          ap.Date,
		CurrentStatus: domain.ToUI(ap.Status),
	}, nil
}

func (uc *AttendAppointment) Complete(
	ctx context.Context,
	caller scope.CallerContext,
	appointmentID string,
	reviewDate *string,
) (*models.Appointment, error) {

	if reviewDate != nil && !dates.ValidDate(*reviewDate) {
		return nil, httperr.ErrBusiness("invalid_review_date")
	}

	ap, err := uc.getScoped(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(ap.Status, domain.UIAttended); err != nil {
		return nil, err
	}

	oldStatus := ap.Status

	if err := uc.repo.UpdateStatusAndReview(
		ctx,
		ap.ID,
		domain.StorageCompleted,
		reviewDate,
	); err != nil {
		return nil, err
	}

	ap.Status = domain.StorageCompleted
	ap.NextReviewDate = reviewDate

	// The review-date change is not separately audited.
	uc.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionUpdate,
		TableName: "appointments",
		RecordID:  ap.ID,
		OldData:   map[string]any{"status": oldStatus},
		NewData:   map[string]any{"status": domain.StorageCompleted},
	})

	return ap, nil
}

func (uc *AttendAppointment) getScoped(
	ctx context.Context,
	caller scope.CallerContext,
	id string,
) (*models.Appointment, error) {

	if caller.MissingScope() {
		return nil, httperr.ErrBusiness("missing_hospital_scope")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	hospital, clinic := caller.Restrict("", "")
	if hospital != "" && ap.Hospital != hospital {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if clinic != "" && ap.Clinic != clinic {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return ap, nil
}
