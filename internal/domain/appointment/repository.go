package appointment

import (
	"context"

	"github.com/medsched/hospital-scheduler/internal/models"
)

type Repository interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// ListAppointments returns the filtered set ordered date DESC,
	// time ASC; today anchors the date-range predicates.
	ListAppointments(ctx context.Context, f Filter, today string) ([]models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateStatus(ctx context.Context, id, status string) error

	// UpdateStatusAndReview persists both fields in one write; a nil
	// review date clears the column.
	UpdateStatusAndReview(ctx context.Context, id, status string, reviewDate *string) error
}
