package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/department"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	GetAllFn func(ctx context.Context) ([]department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) Lookup(ctx context.Context, id uint) (*department.DepartmentResponse, error) {
	return nil, nil
}
func (f *fakeDepartmentService) BulkCreate(ctx context.Context, names []string) ([]department.DepartmentResponse, error) {
	return nil, nil
}
func (f *fakeDepartmentService) InvalidateCache(ctx context.Context) error {
	return nil
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return []department.DepartmentResponse{{ID: 1, Name: "Engineering"}}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"departments":[{"id":1,"name":"Engineering"}]}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return nil, errors.New("db down")
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "db down")
	})
}
