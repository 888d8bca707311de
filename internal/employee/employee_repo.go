package employee

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	BulkCreate(ctx context.Context, emps []Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllOrderedByName(ctx context.Context, dir SortDirection) ([]Employee, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	Save(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) BulkCreate(ctx context.Context, emps []Employee) error {
	if len(emps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&emps).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).Order("id").Find(&emps).Error
	return emps, err
}

// FindAllOrderedByName sorts on name only; ties come back in whatever order the
// store picks.
func (r *repository) FindAllOrderedByName(ctx context.Context, dir SortDirection) ([]Employee, error) {
	if dir != SortDesc {
		dir = SortAsc
	}
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order(fmt.Sprintf("name %s", dir)).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var emp Employee
	if err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// Save writes every column of emp, overwriting the stored row.
func (r *repository) Save(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
