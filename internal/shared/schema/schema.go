package schema

import (
	"context"

	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/role"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DomainModels are the tables recreated by a reset, parents first.
func DomainModels() []any {
	return []any{
		&department.Department{},
		&role.Role{},
		&employee.Employee{},
		&employee.EmployeeDepartment{},
		&employee.EmployeeRole{},
	}
}

type Schema struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger ...*zap.Logger) *Schema {
	l := zap.L().Named("schema")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schema")
	}
	return &Schema{db: db, logger: l}
}

// Migrate creates or alters every table, including outbox_events.
func (s *Schema) Migrate(ctx context.Context) error {
	models := append(DomainModels(), &kafka.OutboxEvent{})
	if err := s.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		s.logger.Error("auto migrate failed", zap.Error(err))
		return err
	}
	s.logger.Info("schema migrated", zap.Int("tables", len(models)))
	return nil
}

// Reset drops and recreates the domain tables. outbox_events is left alone so
// undelivered events survive a reseed.
func (s *Schema) Reset(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	models := DomainModels()

	// Children first on the way down.
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			s.logger.Error("drop table failed", zap.Error(err))
			return err
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Error("recreate tables failed", zap.Error(err))
		return err
	}

	s.logger.Info("domain tables recreated")
	return nil
}
