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
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID   string
	PatientName string

	Date string
	Time string

	Purpose   string
	Specialty string

	Hospital string
	Clinic   string

	Address         string
	Phone           string
	Email           string
	Occupation      string
	HasInsurance    bool
	InsuranceNumber string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Auditor,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	caller scope.CallerContext,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if caller.MissingScope() {
		return nil, httperr.ErrBusiness("missing_hospital_scope")
	}

	if in.PatientName == "" {
		return nil, httperr.ErrBusiness("missing_patient_name")
	}
	if !dates.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !dates.ValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// Non-admin callers only ever create inside their own scope.
	hospital, clinic := caller.Restrict(in.Hospital, in.Clinic)

	ap := models.Appointment{
		PatientID:   in.PatientID,
		PatientName: in.PatientName,

		Date: in.Date,
		Time: in.Time,

		Purpose:   in.Purpose,
		Specialty: in.Specialty,

		Hospital: hospital,
		Clinic:   clinic,

		Status: domain.InitialStatus(),

		Address:         in.Address,
		Phone:           in.Phone,
		Email:           in.Email,
		Occupation:      in.Occupation,
		HasInsurance:    in.HasInsurance,
		InsuranceNumber: in.InsuranceNumber,
	}

	if err := uc.repo.CreateAppointment(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:    &caller.UserID,
		Action:    audit.ActionCreate,
		TableName: "appointments",
		RecordID:  ap.ID,
		NewData:   map[string]any{"status": ap.Status},
	})

	return &ap, nil
}
