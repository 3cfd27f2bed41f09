package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsched/hospital-scheduler/internal/audit"
	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

func ridgeManager() scope.CallerContext {
	return scope.CallerContext{
		UserID:   "user-1",
		Role:     scope.RoleHospitalAdmin,
		Hospital: "Ridge Hospital",
	}
}

func TestChangeStatusToMissed(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Ridge Hospital",
	})
	auditor := &captureAuditor{}
	uc := NewChangeStatus(repo, auditor)

	ap, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "missed")
	require.NoError(t, err)

	assert.Equal(t, domain.StorageNoShow, ap.Status)
	assert.Equal(t, domain.StorageNoShow, repo.appointments["ap-1"].Status)

	require.Len(t, auditor.entries, 1)
	e := auditor.entries[0]
	assert.Equal(t, audit.ActionUpdate, e.Action)
	assert.Equal(t, "appointments", e.TableName)
	assert.Equal(t, "ap-1", e.RecordID)
	assert.Equal(t, domain.StorageScheduled, e.OldData["status"])
	assert.Equal(t, domain.StorageNoShow, e.NewData["status"])
	require.NotNil(t, e.UserID)
	assert.Equal(t, "user-1", *e.UserID)
}

func TestChangeStatusAcceptsMixedCaseTokens(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Ridge Hospital",
	})
	uc := NewChangeStatus(repo, &captureAuditor{})

	ap, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "Cancelled")
	require.NoError(t, err)
	assert.Equal(t, domain.StorageCancelled, ap.Status)
}

func TestChangeStatusToAttendedRequiresReviewDecision(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Ridge Hospital",
	})
	auditor := &captureAuditor{}
	uc := NewChangeStatus(repo, auditor)

	_, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "attended")
	assert.True(t, httperr.IsBusiness(err, "review_decision_required"))

	// Nothing persisted, nothing audited.
	assert.Equal(t, domain.StorageScheduled, repo.appointments["ap-1"].Status)
	assert.Empty(t, auditor.entries)
}

func TestChangeStatusRejectsTerminalStates(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageCancelled,
		Hospital: "Ridge Hospital",
	})
	auditor := &captureAuditor{}
	uc := NewChangeStatus(repo, auditor)

	_, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "missed")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, 0, repo.updateCalls)
	assert.Empty(t, auditor.entries)
}

func TestChangeStatusOutsideCallerScope(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Korle Bu",
	})
	uc := NewChangeStatus(repo, &captureAuditor{})

	_, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "missed")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.Equal(t, domain.StorageScheduled, repo.appointments["ap-1"].Status)
}

func TestChangeStatusWithoutHospitalAssignment(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Korle Bu",
	})
	auditor := &captureAuditor{}
	uc := NewChangeStatus(repo, auditor)

	// A hospital admin with no assignment cannot reach any hospital's
	// appointments.
	caller := scope.CallerContext{UserID: "user-1", Role: scope.RoleHospitalAdmin}

	_, err := uc.Execute(context.Background(), caller, "ap-1", "missed")
	assert.True(t, httperr.IsBusiness(err, "missing_hospital_scope"))
	assert.Equal(t, domain.StorageScheduled, repo.appointments["ap-1"].Status)
	assert.Empty(t, auditor.entries)
}

func TestChangeStatusPersistenceFailureLeavesStateAlone(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID:       "ap-1",
		Status:   domain.StorageScheduled,
		Hospital: "Ridge Hospital",
	})
	repo.failUpdate["ap-1"] = assert.AnError
	auditor := &captureAuditor{}
	uc := NewChangeStatus(repo, auditor)

	_, err := uc.Execute(context.Background(), ridgeManager(), "ap-1", "missed")
	require.Error(t, err)

	assert.Equal(t, domain.StorageScheduled, repo.appointments["ap-1"].Status)
	assert.Empty(t, auditor.entries)
}
