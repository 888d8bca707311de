package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:text"`
	Email     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// EmployeeDepartment links an employee to a department. Nothing enforces one
// row per employee; the service keeps it that way by delete-then-insert.
// DepartmentID is nullable: an update can insert a link without a department.
type EmployeeDepartment struct {
	ID           uint  `gorm:"primaryKey"`
	EmployeeID   uint  `gorm:"not null;index"`
	DepartmentID *uint `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EmployeeRole struct {
	ID         uint  `gorm:"primaryKey"`
	EmployeeID uint  `gorm:"not null;index"`
	RoleID     *uint `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection reads ?order=. Anything other than DESC (any case) sorts
// ascending.
func ParseSortDirection(v string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(v), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}
