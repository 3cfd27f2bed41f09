package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/models"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entry is one before/after snapshot of a tracked mutation. Snapshots
// are built from a closed per-entity field set, never from arbitrary
// structs.
type Entry struct {
	UserID    *string
	Action    string
	TableName string
	RecordID  string
	OldData   map[string]any
	NewData   map[string]any
}

type Recorder struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record appends exactly one immutable row. Rows are never updated or
// deleted afterwards.
func (r *Recorder) Record(e Entry) error {
	row := models.AuditLog{
		UserID:    e.UserID,
		Action:    e.Action,
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldData:   marshalSnapshot(e.OldData),
		NewData:   marshalSnapshot(e.NewData),
	}
	return r.db.Create(&row).Error
}

func marshalSnapshot(data map[string]any) *string {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
