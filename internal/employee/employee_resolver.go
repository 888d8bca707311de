package employee

import (
	"context"
	"errors"

	"go-workforce/internal/department"
	"go-workforce/internal/role"

	"gorm.io/gorm"
)

type DepartmentLookup interface {
	Lookup(ctx context.Context, id uint) (*department.DepartmentResponse, error)
}

type RoleLookup interface {
	Lookup(ctx context.Context, id uint) (*role.RoleResponse, error)
}

// Resolver follows the join tables in both directions.
//
// An employee may carry several department (or role) links. The resolver walks
// them in insertion order and keeps whatever the last one resolved to, even
// when that last lookup finds nothing.
type Resolver struct {
	links       AssociationRepository
	employees   Repository
	departments DepartmentLookup
	roles       RoleLookup
}

func NewResolver(links AssociationRepository, employees Repository, departments DepartmentLookup, roles RoleLookup) *Resolver {
	return &Resolver{
		links:       links,
		employees:   employees,
		departments: departments,
		roles:       roles,
	}
}

func (r *Resolver) ResolveDepartmentForEmployee(ctx context.Context, employeeID uint) (*department.DepartmentResponse, error) {
	links, err := r.links.FindDepartmentLinksByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	var resolved *department.DepartmentResponse
	for _, link := range links {
		resolved = nil
		if link.DepartmentID == nil {
			continue
		}
		dept, err := r.departments.Lookup(ctx, *link.DepartmentID)
		if err != nil {
			return nil, err
		}
		resolved = dept
	}
	return resolved, nil
}

func (r *Resolver) ResolveRoleForEmployee(ctx context.Context, employeeID uint) (*role.RoleResponse, error) {
	links, err := r.links.FindRoleLinksByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	var resolved *role.RoleResponse
	for _, link := range links {
		resolved = nil
		if link.RoleID == nil {
			continue
		}
		rl, err := r.roles.Lookup(ctx, *link.RoleID)
		if err != nil {
			return nil, err
		}
		resolved = rl
	}
	return resolved, nil
}

// ResolveEmployeesForDepartment returns the employees linked to departmentID in
// link order. Links left behind by deleted employees are skipped.
func (r *Resolver) ResolveEmployeesForDepartment(ctx context.Context, departmentID uint) ([]Employee, error) {
	links, err := r.links.FindDepartmentLinksByDepartment(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	ids := make([]uint, len(links))
	for i, link := range links {
		ids[i] = link.EmployeeID
	}
	return r.loadEmployees(ctx, ids)
}

func (r *Resolver) ResolveEmployeesForRole(ctx context.Context, roleID uint) ([]Employee, error) {
	links, err := r.links.FindRoleLinksByRole(ctx, roleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	ids := make([]uint, len(links))
	for i, link := range links {
		ids[i] = link.EmployeeID
	}
	return r.loadEmployees(ctx, ids)
}

func (r *Resolver) loadEmployees(ctx context.Context, ids []uint) ([]Employee, error) {
	emps := make([]Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := r.employees.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, mapRepositoryError(err)
		}
		emps = append(emps, *emp)
	}
	return emps, nil
}
