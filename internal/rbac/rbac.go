package rbac

import "fmt"

// Role is the closed set of staff roles. A user has exactly one,
// assigned when the account is provisioned.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
)

// Permission names a single capability the UI or an endpoint can ask about.
type Permission string

const (
	PermViewPatients        Permission = "view_patients"
	PermEditPatients        Permission = "edit_patients"
	PermDeletePatients      Permission = "delete_patients"
	PermViewAppointments    Permission = "view_appointments"
	PermEditAppointments    Permission = "edit_appointments"
	PermViewTreatmentPlans  Permission = "view_treatment_plans"
	PermEditTreatmentPlans  Permission = "edit_treatment_plans"
	PermViewLabResults      Permission = "view_lab_results"
	PermEditLabResults      Permission = "edit_lab_results"
	PermViewReports         Permission = "view_reports"
	PermExportData          Permission = "export_data"
	PermAccessSettings      Permission = "access_settings"
	PermManageUsers         Permission = "manage_users"
	PermAccessDocumentLinks Permission = "access_document_links"
)

// AllPermissions lists every defined capability. Used by the user endpoint
// to hand the frontend its full permission set in one response.
var AllPermissions = []Permission{
	PermViewPatients,
	PermEditPatients,
	PermDeletePatients,
	PermViewAppointments,
	PermEditAppointments,
	PermViewTreatmentPlans,
	PermEditTreatmentPlans,
	PermViewLabResults,
	PermEditLabResults,
	PermViewReports,
	PermExportData,
	PermAccessSettings,
	PermManageUsers,
	PermAccessDocumentLinks,
}

// rolePermissions is the single source of truth for role capabilities.
// Route gating and UI visibility both derive from this table; there must be
// no role-name comparisons anywhere else.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermViewPatients:        true,
		PermEditPatients:        true,
		PermDeletePatients:      true,
		PermViewAppointments:    true,
		PermEditAppointments:    true,
		PermViewTreatmentPlans:  true,
		PermEditTreatmentPlans:  true,
		PermViewLabResults:      true,
		PermEditLabResults:      true,
		PermViewReports:         true,
		PermExportData:          true,
		PermAccessSettings:      true,
		PermManageUsers:         true,
		PermAccessDocumentLinks: true,
	},
	RoleDoctor: {
		PermViewPatients:        true,
		PermEditPatients:        true,
		PermDeletePatients:      false,
		PermViewAppointments:    true,
		PermEditAppointments:    true,
		PermViewTreatmentPlans:  true,
		PermEditTreatmentPlans:  true,
		PermViewLabResults:      true,
		PermEditLabResults:      true,
		PermViewReports:         true,
		PermExportData:          true,
		PermAccessSettings:      false,
		PermManageUsers:         false,
		PermAccessDocumentLinks: true,
	},
	RoleNurse: {
		PermViewPatients:        true,
		PermEditPatients:        false,
		PermDeletePatients:      false,
		PermViewAppointments:    true,
		PermEditAppointments:    true,
		PermViewTreatmentPlans:  true,
		PermEditTreatmentPlans:  false,
		PermViewLabResults:      true,
		PermEditLabResults:      false,
		PermViewReports:         false,
		PermExportData:          false,
		PermAccessSettings:      false,
		PermManageUsers:         false,
		PermAccessDocumentLinks: true,
	},
}

// Valid reports whether the role is one of the three known roles.
func Valid(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// HasPermission answers whether the role grants the capability.
// An unrecognized role fails closed: no access at all, never admin.
// An unrecognized permission is a programming error, so it panics instead
// of silently defaulting.
func HasPermission(role Role, perm Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	granted, ok := perms[perm]
	if !ok {
		panic(fmt.Sprintf("rbac: undefined permission %q", perm))
	}
	return granted
}

// Permissions returns the full capability map for a role, for the frontend.
// Unknown roles get every capability denied.
func Permissions(role Role) map[Permission]bool {
	out := make(map[Permission]bool, len(AllPermissions))
	for _, p := range AllPermissions {
		out[p] = HasPermission(role, p)
	}
	return out
}

// DisplayName returns the localized role label shown on the badge.
func DisplayName(role Role) string {
	switch role {
	case RoleAdmin:
		return "ผู้ดูแลระบบ"
	case RoleDoctor:
		return "แพทย์"
	case RoleNurse:
		return "พยาบาล"
	default:
		return string(role)
	}
}

// BadgeColor returns the CSS classes for the role badge.
func BadgeColor(role Role) string {
	switch role {
	case RoleAdmin:
		return "bg-red-100 text-red-800 border-red-200"
	case RoleDoctor:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case RoleNurse:
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}
