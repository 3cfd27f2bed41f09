package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/models"
)

const sweepEvalDate = "2024-06-01"

func TestSweepReclassifiesOverduePending(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Date:     "2024-01-01",
		Status:   domain.StorageScheduled,
		Hospital: "Ridge Hospital",
	})
	auditor := &captureAuditor{}
	uc := NewOverdueSweep(repo, auditor)

	n, err := uc.Execute(context.Background(), sweepEvalDate)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, domain.StorageNoShow, repo.appointments["ap-1"].Status)

	require.Len(t, auditor.entries, 1)
	e := auditor.entries[0]
	assert.Equal(t, audit.ActionUpdate, e.Action)
	assert.Equal(t, "appointments", e.TableName)
	assert.Equal(t, "ap-1", e.RecordID)
	assert.Equal(t, map[string]any{"status": "pending"}, e.OldData)
	assert.Equal(t, map[string]any{"status": "no-show"}, e.NewData)
	assert.Nil(t, e.UserID)
}

func TestSweepLeavesTodayAlone(t *testing.T) {
	repo := newFakeRepo(
		models.Appointment{ID: "today", Date: sweepEvalDate, Status: domain.StorageScheduled},
		models.Appointment{ID: "future", Date: "2024-06-15", Status: domain.StorageScheduled},
	)
	auditor := &captureAuditor{}
	uc := NewOverdueSweep(repo, auditor)

	n, err := uc.Execute(context.Background(), sweepEvalDate)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.Equal(t, domain.StorageScheduled, repo.appointments["today"].Status)
	assert.Equal(t, domain.StorageScheduled, repo.appointments["future"].Status)
	assert.Empty(t, auditor.entries)
}

func TestSweepIgnoresResolvedAppointments(t *testing.T) {
	repo := newFakeRepo(
		models.Appointment{ID: "done", Date: "2024-01-01", Status: domain.StorageCompleted},
		models.Appointment{ID: "gone", Date: "2024-01-01", Status: domain.StorageCancelled},
	)
	auditor := &captureAuditor{}
	uc := NewOverdueSweep(repo, auditor)

	n, err := uc.Execute(context.Background(), sweepEvalDate)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, auditor.entries)
}

func TestSweepContinuesPastSingleFailures(t *testing.T) {
	repo := newFakeRepo(
		models.Appointment{ID: "bad", Date: "2024-02-02", Status: domain.StorageScheduled},
		models.Appointment{ID: "good", Date: "2024-03-03", Status: domain.StorageScheduled},
	)
	repo.failUpdate["bad"] = assert.AnError
	auditor := &captureAuditor{}
	uc := NewOverdueSweep(repo, auditor)

	n, err := uc.Execute(context.Background(), sweepEvalDate)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, domain.StorageScheduled, repo.appointments["bad"].Status)
	assert.Equal(t, domain.StorageNoShow, repo.appointments["good"].Status)

	// Only the successful reclassification is audited.
	require.Len(t, auditor.entries, 1)
	assert.Equal(t, "good", auditor.entries[0].RecordID)
}
