package appointment

import (
	"context"
	"strings"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

// ======================================================
// USE CASE
// ======================================================

// ChangeStatus applies the non-attend transitions (missed, cancelled).
// Attended has its own two-phase flow in attend.go because it needs a
// review-date decision before anything is persisted.
type ChangeStatus struct {
	repo  domain.Repository
	audit Auditor
}

func NewChangeStatus(
	repo domain.Repository,
	audit Auditor,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	caller scope.CallerContext,
	appointmentID string,
	targetUIStatus string,
) (*models.Appointment, error) {

	target := strings.ToLower(targetUIStatus)
	if target == domain.UIAttended {
		return nil, httperr.ErrBusiness("review_decision_required")
	}

	ap, err := uc.getScoped(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(ap.Status, target); err != nil {
		return nil, err
	}

	oldStatus := ap.Status
	newStatus := domain.ToStorage(target)

	if err := uc.repo.UpdateStatus(ctx, ap.ID, newStatus); err != nil {
		return nil, err
	}
	ap.Status = newStatus

	uc.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionUpdate,
		TableName: "appointments",
		RecordID:  ap.ID,
		OldData:   map[string]any{"status": oldStatus},
		NewData:   map[string]any{"status": newStatus},
	})

	return ap, nil
}

// getScoped fetches an appointment and rejects it when it falls
// outside the caller's hospital/clinic scope.
func (uc *ChangeStatus) getScoped(
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
