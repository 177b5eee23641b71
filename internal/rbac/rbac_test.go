package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasEveryPermission(t *testing.T) {
	for _, perm := range AllPermissions {
		assert.True(t, HasPermission(RoleAdmin, perm), "admin should have %s", perm)
	}
}

func TestDoctorPermissions(t *testing.T) {
	denied := map[Permission]bool{
		PermDeletePatients: true,
		PermAccessSettings: true,
		PermManageUsers:    true,
	}

	for _, perm := range AllPermissions {
		got := HasPermission(RoleDoctor, perm)
		if denied[perm] {
			assert.False(t, got, "doctor should not have %s", perm)
		} else {
			assert.True(t, got, "doctor should have %s", perm)
		}
	}
}

func TestNursePermissions(t *testing.T) {
	granted := map[Permission]bool{
		PermViewPatients:        true,
		PermViewAppointments:    true,
		PermEditAppointments:    true,
		PermViewTreatmentPlans:  true,
		PermViewLabResults:      true,
		PermAccessDocumentLinks: true,
	}

	for _, perm := range AllPermissions {
		got := HasPermission(RoleNurse, perm)
		if granted[perm] {
			assert.True(t, got, "nurse should have %s", perm)
		} else {
			assert.False(t, got, "nurse should not have %s", perm)
		}
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []Role{"", "superadmin", "ADMIN", "root"} {
		assert.False(t, Valid(role))
		for _, perm := range AllPermissions {
			assert.False(t, HasPermission(role, perm), "role %q should never get %s", role, perm)
		}
	}
}

func TestUndefinedPermissionPanics(t *testing.T) {
	assert.Panics(t, func() {
		HasPermission(RoleAdmin, Permission("launch_missiles"))
	})
}

func TestPermissionsMapIsComplete(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleDoctor, RoleNurse} {
		perms := Permissions(role)
		assert.Len(t, perms, len(AllPermissions))
		for _, p := range AllPermissions {
			assert.Equal(t, HasPermission(role, p), perms[p])
		}
	}

	// unknown role gets everything denied, not an empty map
	perms := Permissions(Role("ghost"))
	assert.Len(t, perms, len(AllPermissions))
	for _, granted := range perms {
		assert.False(t, granted)
	}
}

func TestRoleBadges(t *testing.T) {
	assert.Equal(t, "ผู้ดูแลระบบ", DisplayName(RoleAdmin))
	assert.Equal(t, "แพทย์", DisplayName(RoleDoctor))
	assert.Equal(t, "พยาบาล", DisplayName(RoleNurse))

	assert.Contains(t, BadgeColor(RoleAdmin), "red")
	assert.Contains(t, BadgeColor(RoleDoctor), "blue")
	assert.Contains(t, BadgeColor(RoleNurse), "green")
	assert.Contains(t, BadgeColor(Role("ghost")), "gray")
}
