package employee

import (
	"go-workforce/internal/department"
	"go-workforce/internal/role"
)

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	DepartmentID *uint  `json:"departmentId"`
	RoleID       *uint  `json:"roleId"`
}

// UpdateEmployeeRequest is a patch: nil fields keep their current value.
// DepartmentID and RoleID are only consulted when the employee already has a
// department (resp. role).
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	DepartmentID *uint   `json:"departmentId"`
	RoleID       *uint   `json:"roleId"`
}

type DeleteEmployeeRequest struct {
	ID uint `json:"id" binding:"required"`
}

// EmployeeDetails is an employee enriched with its resolved department and
// role. Both serialize as null when unresolved.
type EmployeeDetails struct {
	ID         uint                           `json:"id"`
	Name       string                         `json:"name"`
	Email      string                         `json:"email"`
	Department *department.DepartmentResponse `json:"department"`
	Role       *role.RoleResponse             `json:"role"`
}
