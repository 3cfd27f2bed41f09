package appointment

import (
	"context"

	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/dates"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

// ======================================================
// INPUT
// ======================================================

type ListAppointmentsInput struct {
	Status   string // "all"/"" or one status token (either vocabulary)
	Range    string // today | upcoming | past | all
	Hospital string
	Clinic   string
}

// ======================================================
// USE CASE
// ======================================================

// ListAppointments is the query/filter engine: status + date range +
// role-scoped hospital/clinic, ordered date DESC then time ASC, with
// storage statuses translated to the UI vocabulary on the way out.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	caller scope.CallerContext,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	if caller.MissingScope() {
		return nil, httperr.ErrBusiness("missing_hospital_scope")
	}

	rng, err := domain.ParseDateRange(in.Range)
	if err != nil {
		return nil, err
	}

	status := ""
	if in.Status != "" && in.Status != "all" {
		status = domain.ToStorage(in.Status)
		if !domain.IsStorageStatus(status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	hospital, clinic := caller.Restrict(in.Hospital, in.Clinic)

	f := domain.Filter{
		Status:   status,
		Range:    rng,
		Hospital: hospital,
		Clinic:   clinic,
	}

	aps, err := uc.repo.ListAppointments(ctx, f, dates.Today())
	if err != nil {
		return nil, err
	}

	for i := range aps {
		aps[i].Status = domain.ToUI(aps[i].Status)
	}

	return aps, nil
}
