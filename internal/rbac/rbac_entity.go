package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:text"`
	ParentID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Role) TableName() string { return "roles" }

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Resource string
	Action   string
	Label    string
	Category string
}

func (Permission) TableName() string { return "permissions" }

// Key is the resource:action form used in requests and responses.
func (p Permission) Key() string {
	return p.Resource + ":" + p.Action
}

type RoleInheritanceRow struct {
	RoleName   string
	ParentName string
}

type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}
