package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

// fakeRepo keeps appointments in memory and reuses the domain filter
// so list behavior matches the gorm repository.
type fakeRepo struct {
	appointments map[string]*models.Appointment
	failUpdate   map[string]error
	updateCalls  int
}

func newFakeRepo(aps ...models.Appointment) *fakeRepo {
	r := &fakeRepo{
		appointments: make(map[string]*models.Appointment),
		failUpdate:   make(map[string]error),
	}
	for i := range aps {
		ap := aps[i]
		if ap.ID == "" {
			ap.ID = uuid.NewString()
		}
		r.appointments[ap.ID] = &ap
	}
	return r
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	copied := *ap
	return &copied, nil
}

func (r *fakeRepo) ListAppointments(ctx context.Context, f domain.Filter, today string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.Matches(ap, today) {
			out = append(out, *ap)
		}
	}
	domain.Sort(out)
	return out, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if err := r.failUpdate[id]; err != nil {
		return err
	}
	ap, ok := r.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	ap.Status = status
	r.updateCalls++
	return nil
}

func (r *fakeRepo) UpdateStatusAndReview(ctx context.Context, id, status string, reviewDate *string) error {
	if err := r.failUpdate[id]; err != nil {
		return err
	}
	ap, ok := r.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	ap.Status = status
	ap.NextReviewDate = reviewDate
	r.updateCalls++
	return nil
}

// captureAuditor records entries synchronously.
type captureAuditor struct {
	entries []audit.Entry
}

func (a *captureAuditor) Dispatch(e audit.Entry) {
	a.entries = append(a.entries, e)
}
