package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medsched/hospital-scheduler/internal/domain/appointment"
	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
	"github.com/medsched/hospital-scheduler/internal/scope"
)

func seedHospitals() *fakeRepo {
	return newFakeRepo(
		models.Appointment{ID: "r1", Date: "2024-06-10", Time: "09:00", Status: domain.StorageScheduled, Hospital: "Ridge Hospital"},
		models.Appointment{ID: "r2", Date: "2024-06-10", Time: "11:00", Status: domain.StorageCompleted, Hospital: "Ridge Hospital"},
		models.Appointment{ID: "r3", Date: "2024-05-01", Time: "08:00", Status: domain.StorageNoShow, Hospital: "Ridge Hospital"},
		models.Appointment{ID: "k1", Date: "2024-06-10", Time: "10:00", Status: domain.StorageScheduled, Hospital: "Korle Bu"},
		models.Appointment{ID: "k2", Date: "2024-06-11", Time: "14:00", Status: domain.StorageCancelled, Hospital: "Korle Bu"},
	)
}

func TestListIsForceScopedToCallerHospital(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{
		UserID:   "user-1",
		Role:     scope.RoleHospitalAdmin,
		Hospital: "Ridge Hospital",
	}

	// No hospital filter at all — still only Ridge Hospital rows.
	aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{})
	require.NoError(t, err)
	require.Len(t, aps, 3)
	for _, ap := range aps {
		assert.Equal(t, "Ridge Hospital", ap.Hospital)
	}

	// An explicit filter for another hospital is overridden.
	aps, err = uc.Execute(context.Background(), caller, ListAppointmentsInput{Hospital: "Korle Bu"})
	require.NoError(t, err)
	require.Len(t, aps, 3)
	for _, ap := range aps {
		assert.Equal(t, "Ridge Hospital", ap.Hospital)
	}
}

func TestListRejectsCallerWithoutHospitalAssignment(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	// A scoped role with an empty hospital must match nothing, not
	// everything.
	for _, role := range []string{scope.RoleHospitalAdmin, scope.RoleAppointmentManager, scope.RoleAnalyticsViewer} {
		caller := scope.CallerContext{UserID: "user-1", Role: role}

		aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{})
		assert.True(t, httperr.IsBusiness(err, "missing_hospital_scope"), role)
		assert.Empty(t, aps, role)
	}
}

func TestListSuperAdminSeesEverything(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{UserID: "admin", Role: scope.RoleSuperAdmin}

	aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{})
	require.NoError(t, err)
	assert.Len(t, aps, 5)

	aps, err = uc.Execute(context.Background(), caller, ListAppointmentsInput{Hospital: "Korle Bu"})
	require.NoError(t, err)
	assert.Len(t, aps, 2)
}

func TestListTranslatesStatusesToUIVocabulary(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{UserID: "admin", Role: scope.RoleSuperAdmin}

	aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{})
	require.NoError(t, err)

	byID := map[string]string{}
	for _, ap := range aps {
		byID[ap.ID] = ap.Status
	}
	assert.Equal(t, domain.UIPending, byID["r1"])
	assert.Equal(t, domain.UIAttended, byID["r2"])
	assert.Equal(t, domain.UIMissed, byID["r3"])
	assert.Equal(t, domain.UICancelled, byID["k2"])
}

func TestListStatusFilterAcceptsEitherVocabulary(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{UserID: "admin", Role: scope.RoleSuperAdmin}

	// UI token.
	aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{Status: "missed"})
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, "r3", aps[0].ID)

	// Storage token.
	aps, err = uc.Execute(context.Background(), caller, ListAppointmentsInput{Status: "no-show"})
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, "r3", aps[0].ID)
}

func TestListRejectsUnknownStatusAndRange(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{UserID: "admin", Role: scope.RoleSuperAdmin}

	_, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{Status: "rescheduled"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), caller, ListAppointmentsInput{Range: "yesterday"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestListOrdering(t *testing.T) {
	repo := seedHospitals()
	uc := NewListAppointments(repo)

	caller := scope.CallerContext{UserID: "admin", Role: scope.RoleSuperAdmin}

	aps, err := uc.Execute(context.Background(), caller, ListAppointmentsInput{})
	require.NoError(t, err)
	require.Len(t, aps, 5)

	// Date descending, then time ascending.
	ids := []string{aps[0].ID, aps[1].ID, aps[2].ID, aps[3].ID, aps[4].ID}
	assert.Equal(t, []string{"k2", "r1", "k1", "r2", "r3"}, ids)
}
