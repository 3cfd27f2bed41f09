package scope

// ===============================
// Roles
// ===============================

const (
	RoleSuperAdmin         = "super_admin"
	RoleHospitalAdmin      = "hospital_admin"
	RoleAppointmentManager = "appointment_manager"
	RoleAnalyticsViewer    = "analytics_viewer"
)

func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleHospitalAdmin, RoleAppointmentManager, RoleAnalyticsViewer:
		return true
	}
	return false
}

// ===============================
// Caller Context
// ===============================

// CallerContext carries the identity and organizational scope of the
// acting user. It is passed explicitly into every core operation
// instead of being read from ambient state.
type CallerContext struct {
	UserID   string
	Role     string
	Hospital string
	Clinic   string
}

// Restrict applies role-based scoping to a requested hospital/clinic
// filter. A super admin may select any hospital or none; every other
// role is forced to its own hospital, and appointment managers are
// additionally forced to their own clinic.
func (c CallerContext) Restrict(requestedHospital, requestedClinic string) (hospital, clinic string) {
	if c.Role == RoleSuperAdmin {
		return requestedHospital, requestedClinic
	}
	hospital = c.Hospital
	clinic = requestedClinic
	if c.Role == RoleAppointmentManager {
		clinic = c.Clinic
	}
	return hospital, clinic
}

// MissingScope reports a non-super-admin caller with no hospital
// assignment. Such a caller has no legal scope at all: an empty
// hospital must never widen into "unrestricted".
func (c CallerContext) MissingScope() bool {
	return c.Role != RoleSuperAdmin && c.Hospital == ""
}

func (c CallerContext) CanViewAuditLogs() bool {
	return c.Role == RoleSuperAdmin
}

func (c CallerContext) CanManageHospitals() bool {
	return c.Role == RoleSuperAdmin
}

func (c CallerContext) CanListProfiles() bool {
	return c.Role == RoleSuperAdmin || c.Role == RoleHospitalAdmin
}
