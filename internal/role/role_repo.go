package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	BulkCreate(ctx context.Context, roles []Role) error
	FindAll(ctx context.Context) ([]Role, error)
	FindByID(ctx context.Context, id uint) (*Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BulkCreate(ctx context.Context, roles []Role) error {
	if len(roles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&roles).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("id").Find(&roles).Error
	return roles, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Role, error) {
	var rl Role
	if err := r.db.WithContext(ctx).First(&rl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rl, nil
}
