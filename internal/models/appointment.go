package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID   string `gorm:"type:uuid;index" json:"patient_id"`
	PatientName string `gorm:"size:100;not null" json:"patient_name"`

	// Naive wall-clock strings; the schema has no timezone column.
	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Purpose   string `gorm:"size:255" json:"purpose"`
	Specialty string `gorm:"size:100" json:"specialty"`

	Hospital string `gorm:"size:100;index" json:"hospital"`
	Clinic   string `gorm:"size:100;index" json:"clinic"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	NextReviewDate *string `gorm:"size:10" json:"next_review_date"`

	Address         string `gorm:"size:255" json:"address"`
	Phone           string `gorm:"size:20" json:"phone"`
	Email           string `gorm:"size:100" json:"email"`
	Occupation      string `gorm:"size:100" json:"occupation"`
	HasInsurance    bool   `json:"has_insurance"`
	InsuranceNumber string `gorm:"size:50" json:"insurance_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
