package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID *string `gorm:"type:uuid" json:"user_id"`
	Action string  `gorm:"size:20;not null" json:"action"`

	TableName string `gorm:"size:50;not null" json:"table_name"`
	RecordID  string `gorm:"size:64" json:"record_id"`

	// JSON snapshots; nil for creates (old) and deletes (new).
	OldData *string `gorm:"type:text" json:"old_data"`
	NewData *string `gorm:"type:text" json:"new_data"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
