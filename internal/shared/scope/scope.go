package scope

import (
	"time"

	"gorm.io/gorm"
)

// Active keeps rows whose is_active flag is set.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// Status filters on the status column when a value is given.
func Status(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

// Employee restricts rows to one employee.
func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

// ManagedBy restricts rows of an employee-owned table to the direct reports of managerID.
func ManagedBy(managerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if managerID == "" {
			return db
		}
		return db.Where("employee_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("employees").
				Select("id").
				Where("manager_id = ?", managerID),
		)
	}
}

// DateRange bounds column between from and to, both optional and inclusive.
func DateRange(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// ReportsTo restricts the employees table to the direct reports of managerID.
func ReportsTo(managerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if managerID == "" {
			return db
		}
		return db.Where("employees.manager_id = ?", managerID)
	}
}
