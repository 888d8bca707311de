package seed

import (
	"context"

	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/role"
	"go-workforce/internal/shared/apperror"

	"go.uber.org/zap"
)

type SchemaResetter interface {
	Reset(ctx context.Context) error
}

type DepartmentSeeder interface {
	BulkCreate(ctx context.Context, names []string) ([]department.DepartmentResponse, error)
	InvalidateCache(ctx context.Context) error
}

type RoleSeeder interface {
	BulkCreate(ctx context.Context, titles []string) ([]role.RoleResponse, error)
	InvalidateCache(ctx context.Context) error
}

var (
	departmentNames = []string{"Engineering", "Marketing"}
	roleTitles      = []string{"Software Engineer", "Marketing Specialist", "Product Manager"}
	seedEmployees   = []employee.Employee{
		{Name: "Rahul Sharma", Email: "rahul.sharma@example.com"},
		{Name: "Priya Singh", Email: "priya.singh@example.com"},
		{Name: "Ankit Verma", Email: "ankit.verma@example.com"},
	}
	// employee index -> department index, role index
	seedLinks = [][3]int{
		{0, 0, 0},
		{1, 1, 1},
		{2, 0, 2},
	}
)

type Service interface {
	Seed(ctx context.Context) error
}

type service struct {
	schema      SchemaResetter
	departments DepartmentSeeder
	roles       RoleSeeder
	employees   employee.Repository
	links       employee.AssociationRepository
	logger      *zap.Logger
}

func NewService(
	schema SchemaResetter,
	departments DepartmentSeeder,
	roles RoleSeeder,
	employees employee.Repository,
	links employee.AssociationRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("seed.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed.service")
	}
	return &service{
		schema:      schema,
		departments: departments,
		roles:       roles,
		employees:   employees,
		links:       links,
		logger:      l,
	}
}

// Seed wipes the domain tables and loads the fixed sample data. Nothing is
// rolled back if a step fails part way.
func (s *service) Seed(ctx context.Context) error {
	s.logger.Info("seeding database")

	if err := s.schema.Reset(ctx); err != nil {
		return apperror.Store(err)
	}

	depts, err := s.departments.BulkCreate(ctx, departmentNames)
	if err != nil {
		return err
	}
	roles, err := s.roles.BulkCreate(ctx, roleTitles)
	if err != nil {
		return err
	}

	emps := make([]employee.Employee, len(seedEmployees))
	copy(emps, seedEmployees)
	if err := s.employees.BulkCreate(ctx, emps); err != nil {
		s.logger.Error("seed employees failed", zap.Error(err))
		return apperror.Store(err)
	}

	for _, l := range seedLinks {
		emp, dept, rl := emps[l[0]], depts[l[1]], roles[l[2]]

		deptID := dept.ID
		if err := s.links.CreateDepartmentLink(ctx, &employee.EmployeeDepartment{EmployeeID: emp.ID, DepartmentID: &deptID}); err != nil {
			s.logger.Error("seed department link failed", zap.Uint("employee_id", emp.ID), zap.Error(err))
			return apperror.Store(err)
		}
		roleID := rl.ID
		if err := s.links.CreateRoleLink(ctx, &employee.EmployeeRole{EmployeeID: emp.ID, RoleID: &roleID}); err != nil {
			s.logger.Error("seed role link failed", zap.Uint("employee_id", emp.ID), zap.Error(err))
			return apperror.Store(err)
		}
	}

	// Ids restart at 1 after a reset, so cached lookups may now be wrong.
	if err := s.departments.InvalidateCache(ctx); err != nil {
		s.logger.Warn("invalidate department cache failed", zap.Error(err))
	}
	if err := s.roles.InvalidateCache(ctx); err != nil {
		s.logger.Warn("invalidate role cache failed", zap.Error(err))
	}

	s.logger.Info("database seeded",
		zap.Int("departments", len(depts)),
		zap.Int("roles", len(roles)),
		zap.Int("employees", len(emps)),
	)
	return nil
}
