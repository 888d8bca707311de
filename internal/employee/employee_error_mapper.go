package employee

import (
	"errors"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Store(err).WithDetails(map[string]string{
			"sqlstate":   pgErr.Code,
			"constraint": pgErr.ConstraintName,
		})
	}

	return apperror.Store(err)
}
