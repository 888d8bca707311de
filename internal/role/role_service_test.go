package role_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/role"

	roleMock "go-workforce/internal/role/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestRoleService_Lookup(t *testing.T) {
	ctx := context.Background()
	cacheKey := role.GetRoleKey(2)

	t.Run("cache miss then fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roleMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := role.NewService(repo, rdb, time.Hour)

		redisMock.ExpectGet(cacheKey).RedisNil()
		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&role.Role{ID: 2, Title: "Marketing Specialist"}, nil)
		redisMock.ExpectSet(cacheKey, []byte(`{"id":2,"title":"Marketing Specialist"}`), time.Hour).SetVal("OK")

		resp, err := svc.Lookup(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, &role.RoleResponse{ID: 2, Title: "Marketing Specialist"}, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roleMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := role.NewService(repo, rdb, time.Hour)

		redisMock.ExpectGet(cacheKey).SetVal(`{"id":2,"title":"Marketing Specialist"}`)

		resp, err := svc.Lookup(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Marketing Specialist", resp.Title)
	})

	t.Run("absent role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roleMock.NewMockRepository(ctrl)
		svc := role.NewService(repo, nil, 0)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.Lookup(ctx, 2)

		assert.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roleMock.NewMockRepository(ctrl)
		svc := role.NewService(repo, nil, 0)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(nil, errors.New("timeout"))

		_, err := svc.Lookup(ctx, 2)

		assert.EqualError(t, err, "timeout")
	})
	t.Run("canceled caller does not cancel the shared fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roleMock.NewMockRepository(ctrl)
		svc := role.NewService(repo, nil, 0)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			DoAndReturn(func(fillCtx context.Context, id uint) (*role.Role, error) {
				assert.NoError(t, fillCtx.Err())
				return &role.Role{ID: 2, Title: "Marketing Specialist"}, nil
			})

		resp, err := svc.Lookup(canceled, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Marketing Specialist", resp.Title)
	})
}
