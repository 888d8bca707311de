package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeDetails, error)
	GetAll(ctx context.Context) ([]EmployeeDetails, error)
	GetByID(ctx context.Context, id uint) (EmployeeDetails, error)
	GetByDepartment(ctx context.Context, departmentID uint) ([]EmployeeDetails, error)
	GetByRole(ctx context.Context, roleID uint) ([]EmployeeDetails, error)
	GetSortedByName(ctx context.Context, dir SortDirection) ([]EmployeeDetails, error)
	// Update returns nil, nil when no employee has the id.
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (*EmployeeDetails, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo      Repository
	links     AssociationRepository
	resolver  *Resolver
	composer  *Composer
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	links AssociationRepository,
	departments DepartmentLookup,
	roles RoleLookup,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithPublisher(repo, links, departments, roles, nil, logger...)
}

func NewServiceWithPublisher(
	repo Repository,
	links AssociationRepository,
	departments DepartmentLookup,
	roles RoleLookup,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	resolver := NewResolver(links, repo, departments, roles)
	return &service{
		repo:      repo,
		links:     links,
		resolver:  resolver,
		composer:  NewComposer(resolver),
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeDetails, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if req.Name == "" || req.Email == "" {
		return EmployeeDetails{}, employeeerrors.ErrNameAndEmailRequired
	}

	emp := &Employee{Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeDetails{}, mapRepositoryError(err)
	}

	if hasID(req.DepartmentID) {
		link := &EmployeeDepartment{EmployeeID: emp.ID, DepartmentID: req.DepartmentID}
		if err := s.links.CreateDepartmentLink(ctx, link); err != nil {
			s.logger.Error("create employee department link failed",
				zap.String("request_id", rid),
				zap.Uint("employee_id", emp.ID),
				zap.Error(err),
			)
			return EmployeeDetails{}, mapRepositoryError(err)
		}
	}

	if hasID(req.RoleID) {
		link := &EmployeeRole{EmployeeID: emp.ID, RoleID: req.RoleID}
		if err := s.links.CreateRoleLink(ctx, link); err != nil {
			s.logger.Error("create employee role link failed",
				zap.String("request_id", rid),
				zap.Uint("employee_id", emp.ID),
				zap.Error(err),
			)
			return EmployeeDetails{}, mapRepositoryError(err)
		}
	}

	details, err := s.composer.Compose(ctx, *emp)
	if err != nil {
		s.logger.Error("compose created employee failed", zap.Uint("employee_id", emp.ID), zap.Error(err))
		return EmployeeDetails{}, err
	}

	s.publish(ctx, events.EmployeeCreated, *emp)
	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.Uint("employee_id", emp.ID),
	)
	return details, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeDetails, error) {
	s.logger.Debug("get all employees requested")

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return s.composer.ComposeAll(ctx, emps, ComposeSequential)
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeDetails, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		}
		return EmployeeDetails{}, mapRepositoryError(err)
	}

	return s.composer.Compose(ctx, *emp)
}

func (s *service) GetByDepartment(ctx context.Context, departmentID uint) ([]EmployeeDetails, error) {
	s.logger.Debug("get employees by department requested", zap.Uint("department_id", departmentID))

	emps, err := s.resolver.ResolveEmployeesForDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("resolve employees for department failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, err
	}

	return s.composer.ComposeAll(ctx, emps, ComposeSequential)
}

func (s *service) GetByRole(ctx context.Context, roleID uint) ([]EmployeeDetails, error) {
	s.logger.Debug("get employees by role requested", zap.Uint("role_id", roleID))

	emps, err := s.resolver.ResolveEmployeesForRole(ctx, roleID)
	if err != nil {
		s.logger.Error("resolve employees for role failed", zap.Uint("role_id", roleID), zap.Error(err))
		return nil, err
	}

	return s.composer.ComposeAll(ctx, emps, ComposeSequential)
}

func (s *service) GetSortedByName(ctx context.Context, dir SortDirection) ([]EmployeeDetails, error) {
	s.logger.Debug("get employees sorted by name requested", zap.String("order", string(dir)))

	emps, err := s.repo.FindAllOrderedByName(ctx, dir)
	if err != nil {
		s.logger.Error("get employees sorted by name failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return s.composer.ComposeAll(ctx, emps, ComposeParallel)
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (*EmployeeDetails, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("update employee lookup failed", zap.Uint("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	// Links are only rewritten when the employee already resolves one; the
	// replacement takes the patch id, which may be absent.
	currentDept, err := s.resolver.ResolveDepartmentForEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if currentDept != nil {
		if err := s.links.DeleteDepartmentLinks(ctx, id); err != nil {
			s.logger.Error("delete employee department links failed", zap.Uint("employee_id", id), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		if err := s.links.CreateDepartmentLink(ctx, &EmployeeDepartment{EmployeeID: id, DepartmentID: req.DepartmentID}); err != nil {
			s.logger.Error("replace employee department link failed", zap.Uint("employee_id", id), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
	}

	currentRole, err := s.resolver.ResolveRoleForEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if currentRole != nil {
		if err := s.links.DeleteRoleLinks(ctx, id); err != nil {
			s.logger.Error("delete employee role links failed", zap.Uint("employee_id", id), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		if err := s.links.CreateRoleLink(ctx, &EmployeeRole{EmployeeID: id, RoleID: req.RoleID}); err != nil {
			s.logger.Error("replace employee role link failed", zap.Uint("employee_id", id), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if err := s.repo.Save(ctx, emp); err != nil {
		s.logger.Error("save employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	details, err := s.composer.Compose(ctx, *emp)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EmployeeUpdated, *emp)
	s.logger.Info("employee updated",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return &details, nil
}

func (s *service) Delete(ctx context.Context, id uint) (bool, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return false, mapRepositoryError(err)
	}
	if affected == 0 {
		return false, nil
	}

	s.publish(ctx, events.EmployeeDeleted, Employee{ID: id})
	s.logger.Info("employee deleted",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return true, nil
}

// publish records a lifecycle event. The mutation has already happened, so a
// failure here is only logged.
func (s *service) publish(ctx context.Context, eventType string, emp Employee) {
	rid := contextutil.GetRequestID(ctx)
	err := s.publisher.PublishLifecycle(ctx, events.EmployeeLifecycleEvent{
		EventType:  eventType,
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		RequestID:  rid,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("publish employee lifecycle event failed",
			zap.String("request_id", rid),
			zap.String("event_type", eventType),
			zap.Uint("employee_id", emp.ID),
			zap.Error(err),
		)
	}
}

func hasID(id *uint) bool {
	return id != nil && *id != 0
}
