package rbac

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    string   `json:"parent_id,omitempty"`
	Permissions []string `json:"permissions"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=50"`
	Description string   `json:"description"`
	ParentID    string   `json:"parent_id" binding:"omitempty,uuid"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id" binding:"omitempty,uuid"`
}

// SetRolePermissionsRequest replaces a role's permissions. Entries are permission
// ids or resource:action keys.
type SetRolePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}
