package domain

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role string
}

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// IsPrivileged is true for HR and Admin, who see every employee.
func (a Actor) IsPrivileged() bool {
	return a.HasRole(RoleHR, RoleAdmin)
}

// IsManager is true for the Manager role only.
func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}

// TeamScope returns the manager id to filter by, or "" when the actor sees everyone.
func (a Actor) TeamScope() string {
	if a.IsManager() {
		return a.ID
	}
	return ""
}
