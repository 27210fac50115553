package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	roles := []Role{RoleUser, RoleAdmin}

	assert.True(t, HasRole(roles, RoleUser))
	assert.True(t, HasRole(roles, RoleAdmin))
	assert.False(t, HasRole(roles, RoleSuperAdmin))
	assert.False(t, HasRole(nil, RoleUser))
}

func TestHasAdminOrSuperAdmin(t *testing.T) {
	assert.False(t, HasAdminOrSuperAdmin([]Role{RoleUser}))
	assert.True(t, HasAdminOrSuperAdmin([]Role{RoleAdmin}))
	assert.True(t, HasAdminOrSuperAdmin([]Role{RoleSuperAdmin}))
	assert.True(t, HasAdminOrSuperAdmin([]Role{RoleUser, RoleAdmin}))
}

func TestHasSuperAdmin(t *testing.T) {
	assert.False(t, HasSuperAdmin([]Role{RoleUser, RoleAdmin}))
	assert.True(t, HasSuperAdmin([]Role{RoleSuperAdmin}))
}

func TestInvalidRoleNames(t *testing.T) {
	assert.Nil(t, InvalidRoleNames(nil))
	assert.Nil(t, InvalidRoleNames([]string{"USER", "ADMIN", "SUPER_ADMIN"}))
	assert.Equal(t, []string{"OWNER", "guest"}, InvalidRoleNames([]string{"OWNER", "ADMIN", "guest"}))
}

func TestUser_IsProtected(t *testing.T) {
	user := &User{Roles: []Role{RoleUser}}
	admin := &User{Roles: []Role{RoleUser, RoleAdmin}}

	assert.False(t, user.IsProtected())
	assert.True(t, admin.IsProtected())
}

func TestRoleNames_RoundTrip(t *testing.T) {
	roles := []Role{RoleUser, RoleSuperAdmin}

	names := RoleNames(roles)
	assert.Equal(t, []string{"USER", "SUPER_ADMIN"}, names)
	assert.Equal(t, roles, RolesFromNames(names))
}
