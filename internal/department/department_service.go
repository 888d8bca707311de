package department

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

const (
	CacheKeyPrefix  = "departments:"
	defaultCacheTTL = 30 * time.Minute
)

func GetDepartmentKey(id uint) string {
	return fmt.Sprintf("%sid:%d", CacheKeyPrefix, id)
}

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	// Lookup returns nil, nil when no department has the id.
	Lookup(ctx context.Context, id uint) (*DepartmentResponse, error)
	BulkCreate(ctx context.Context, names []string) ([]DepartmentResponse, error)
	InvalidateCache(ctx context.Context) error
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService builds the department service. rdb may be nil, in which case every
// lookup goes to the store.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	s.logger.Debug("get all departments requested")
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, apperror.Store(err)
	}
	return mapToListResponse(depts), nil
}

func (s *service) Lookup(ctx context.Context, id uint) (*DepartmentResponse, error) {
	cacheKey := GetDepartmentKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		dept, err := s.repo.FindByID(fillCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return (*DepartmentResponse)(nil), nil
			}
			return nil, apperror.Store(err)
		}

		resp := mapToResponse(*dept)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(fillCtx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache department failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return &resp, nil
	})
	if err != nil {
		s.logger.Error("lookup department failed", zap.Uint("department_id", id), zap.Error(err))
		return nil, err
	}

	return v.(*DepartmentResponse), nil
}

func (s *service) BulkCreate(ctx context.Context, names []string) ([]DepartmentResponse, error) {
	depts := make([]Department, len(names))
	for i, name := range names {
		depts[i] = Department{Name: name}
	}

	if err := s.repo.BulkCreate(ctx, depts); err != nil {
		s.logger.Error("bulk create departments failed", zap.Error(err))
		return nil, apperror.Store(err)
	}

	s.logger.Info("departments created", zap.Int("count", len(depts)))
	return mapToListResponse(depts), nil
}

// InvalidateCache drops every cached department. Called after the tables are
// recreated, since ids are reissued from 1.
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
		s.logger.Error("scan department cache failed", zap.Error(err))
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("invalidate department cache failed", zap.Strings("keys", keys), zap.Error(err))
		return err
	}
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   dept.ID,
		Name: dept.Name,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
