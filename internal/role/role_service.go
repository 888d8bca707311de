package role

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-workforce/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const CacheKeyPrefix = "roles:"

func GetRoleKey(id uint) string {
	return fmt.Sprintf("%sid:%d", CacheKeyPrefix, id)
}

type Service interface {
	GetAll(ctx context.Context) ([]RoleResponse, error)
	// Lookup returns nil, nil when no role has the id.
	Lookup(ctx context.Context, id uint) (*RoleResponse, error)
	BulkCreate(ctx context.Context, titles []string) ([]RoleResponse, error)
	InvalidateCache(ctx context.Context) error
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all roles failed", zap.Error(err))
		return nil, apperror.Store(err)
	}
	return mapToListResponse(roles), nil
}

func (s *service) Lookup(ctx context.Context, id uint) (*RoleResponse, error) {
	cacheKey := GetRoleKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp RoleResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	// The fill is shared by every caller waiting on the key, so it must not
	// die with the first caller's context.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rl, err := s.repo.FindByID(fillCtx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return (*RoleResponse)(nil), nil
		}
		if err != nil {
			return nil, apperror.Store(err)
		}

		resp := mapToResponse(*rl)
		s.store(fillCtx, cacheKey, resp)
		return &resp, nil
	})
	if err != nil {
		s.logger.Error("lookup role failed", zap.Uint("role_id", id), zap.Error(err))
		return nil, err
	}

	return v.(*RoleResponse), nil
}

func (s *service) store(ctx context.Context, key string, resp RoleResponse) {
	if s.rdb == nil {
		return
	}
	jsonData, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, jsonData, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("cache role failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) BulkCreate(ctx context.Context, titles []string) ([]RoleResponse, error) {
	roles := make([]Role, len(titles))
	for i, title := range titles {
		roles[i] = Role{Title: title}
	}

	if err := s.repo.BulkCreate(ctx, roles); err != nil {
		s.logger.Error("bulk create roles failed", zap.Error(err))
		return nil, apperror.Store(err)
	}

	s.logger.Info("roles created", zap.Int("count", len(roles)))
	return mapToListResponse(roles), nil
}

func (s *service) InvalidateCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	var keys []string
	iter := s.rdb.Scan(ctx, 0, CacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func mapToResponse(rl Role) RoleResponse {
	return RoleResponse{ID: rl.ID, Title: rl.Title}
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, rl := range roles {
		res[i] = mapToResponse(rl)
	}
	return res
}
