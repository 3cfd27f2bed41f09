package appointment

import (
	"context"
	"log"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
)

// ======================================================
// OVERDUE SWEEP
// ======================================================

// OverdueSweep reclassifies appointments still scheduled after their
// date has passed to no-show. One record at a time; a failure on one
// record is logged and the pass continues.
type OverdueSweep struct {
	repo  domain.Repository
	audit Auditor
}

func NewOverdueSweep(
	repo domain.Repository,
	audit Auditor,
) *OverdueSweep {
	return &OverdueSweep{
		repo:  repo,
		audit: audit,
	}
}

// Execute runs one pass anchored at today and returns how many
// appointments were reclassified.
func (uc *OverdueSweep) Execute(ctx context.Context, today string) (int, error) {

	f := domain.Filter{
		Status: domain.StorageScheduled,
		Range:  domain.RangePast,
	}

	overdue, err := uc.repo.ListAppointments(ctx, f, today)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range overdue {
		ap := &overdue[i]

		// Strictly before today; an appointment dated today is never
		// swept even while still pending.
		if ap.Date >= today {
			continue
		}

		if err := uc.repo.UpdateStatus(ctx, ap.ID, domain.StorageNoShow); err != nil {
			log.Printf("overdue sweep: appointment %s: %v", ap.ID, err)
			continue
		}

		// System-initiated, so no actor. The old snapshot keeps the
		// UI token; the sweep always reads a pending appointment.
		uc.audit.Dispatch(audit.Entry{
			Action:    audit.ActionUpdate,
			TableName: "appointments",
			RecordID:  ap.ID,
			OldData:   map[string]any{"status": domain.UIPending},
			NewData:   map[string]any{"status": domain.StorageNoShow},
		})

		count++
	}

	return count, nil
}
