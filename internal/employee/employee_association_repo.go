package employee

import (
	"context"

	"gorm.io/gorm"
)

// AssociationRepository reads and writes the employee_departments and
// employee_roles join tables. Rows are always returned in id order, which is
// insertion order.
//
//go:generate mockgen -source=employee_association_repo.go -destination=mock/employee_association_repo_mock.go -package=mock
type AssociationRepository interface {
	FindDepartmentLinksByEmployee(ctx context.Context, employeeID uint) ([]EmployeeDepartment, error)
	FindDepartmentLinksByDepartment(ctx context.Context, departmentID uint) ([]EmployeeDepartment, error)
	CreateDepartmentLink(ctx context.Context, link *EmployeeDepartment) error
	BulkCreateDepartmentLinks(ctx context.Context, links []EmployeeDepartment) error
	DeleteDepartmentLinks(ctx context.Context, employeeID uint) error

	FindRoleLinksByEmployee(ctx context.Context, employeeID uint) ([]EmployeeRole, error)
	FindRoleLinksByRole(ctx context.Context, roleID uint) ([]EmployeeRole, error)
	CreateRoleLink(ctx context.Context, link *EmployeeRole) error
	BulkCreateRoleLinks(ctx context.Context, links []EmployeeRole) error
	DeleteRoleLinks(ctx context.Context, employeeID uint) error
}

type associationRepository struct {
	db *gorm.DB
}

func NewAssociationRepository(db *gorm.DB) AssociationRepository {
	return &associationRepository{db: db}
}

func (r *associationRepository) FindDepartmentLinksByEmployee(ctx context.Context, employeeID uint) ([]EmployeeDepartment, error) {
	var links []EmployeeDepartment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&links).Error
	return links, err
}

func (r *associationRepository) FindDepartmentLinksByDepartment(ctx context.Context, departmentID uint) ([]EmployeeDepartment, error) {
	var links []EmployeeDepartment
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("id").
		Find(&links).Error
	return links, err
}

func (r *associationRepository) CreateDepartmentLink(ctx context.Context, link *EmployeeDepartment) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *associationRepository) BulkCreateDepartmentLinks(ctx context.Context, links []EmployeeDepartment) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *associationRepository) DeleteDepartmentLinks(ctx context.Context, employeeID uint) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeDepartment{}).Error
}

func (r *associationRepository) FindRoleLinksByEmployee(ctx context.Context, employeeID uint) ([]EmployeeRole, error) {
	var links []EmployeeRole
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&links).Error
	return links, err
}

func (r *associationRepository) FindRoleLinksByRole(ctx context.Context, roleID uint) ([]EmployeeRole, error) {
	var links []EmployeeRole
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id").
		Find(&links).Error
	return links, err
}

func (r *associationRepository) CreateRoleLink(ctx context.Context, link *EmployeeRole) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *associationRepository) BulkCreateRoleLinks(ctx context.Context, links []EmployeeRole) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *associationRepository) DeleteRoleLinks(ctx context.Context, employeeID uint) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeRole{}).Error
}
