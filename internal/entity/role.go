package entity

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func HasRole(roles []Role, target Role) bool {
	for _, role := range roles {
		if role == target {
			return true
		}
	}
	return false
}

func HasAdminOrSuperAdmin(roles []Role) bool {
	return HasRole(roles, RoleAdmin) || HasRole(roles, RoleSuperAdmin)
}

func HasSuperAdmin(roles []Role) bool {
	return HasRole(roles, RoleSuperAdmin)
}

// InvalidRoleNames returns every entry of candidates that is not a known role.
// Used to validate role filters coming from untrusted query input.
func InvalidRoleNames(candidates []string) []string {
	var invalid []string
	for _, candidate := range candidates {
		switch Role(candidate) {
		case RoleUser, RoleAdmin, RoleSuperAdmin:
		default:
			invalid = append(invalid, candidate)
		}
	}
	return invalid
}

// RoleNames converts a role set to its raw string form for token claims.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return names
}

// RolesFromNames is the inverse of RoleNames; unknown names are kept as-is so
// that downstream validation can reject them.
func RolesFromNames(names []string) []Role {
	roles := make([]Role, len(names))
	for i, name := range names {
		roles[i] = Role(name)
	}
	return roles
}
