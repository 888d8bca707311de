package role_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-workforce/internal/role"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (role.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return role.NewRepository(gormDB), mock
}

func TestRoleRepository_BulkCreate(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "roles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	roles := []role.Role{{Title: "Software Engineer"}, {Title: "Product Manager"}}
	err := repo.BulkCreate(context.Background(), roles)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), roles[0].ID)
	assert.Equal(t, uint(2), roles[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
				AddRow(3, "Product Manager", now, now))

		rl, err := repo.FindByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "Product Manager", rl.Title)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}))

		rl, err := repo.FindByID(context.Background(), 99)

		assert.Nil(t, rl)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}
