package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.Filter,
	today string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	switch f.Range {
	case domain.RangeToday:
		q = q.Where("date = ?", today)
	case domain.RangeUpcoming:
		q = q.Where("date >= ?", today)
	case domain.RangePast:
		q = q.Where("date < ?", today)
	}

	if f.Hospital != "" {
		q = q.Where("hospital = ?", f.Hospital)
	}
	if f.Clinic != "" {
		q = q.Where("clinic = ?", f.Clinic)
	}

	var aps []models.Appointment
	if err := q.
		Order("date DESC").
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateStatusAndReview(
	ctx context.Context,
	id string,
	status string,
	reviewDate *string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           status,
			"next_review_date": reviewDate,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
