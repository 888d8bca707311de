package seed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/role"
	"go-workforce/internal/seed"

	employeeMock "go-workforce/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeSchema struct {
	resets int
	err    error
}

func (f *fakeSchema) Reset(ctx context.Context) error {
	f.resets++
	return f.err
}

type fakeDepartmentSeeder struct {
	invalidated bool
}

func (f *fakeDepartmentSeeder) BulkCreate(ctx context.Context, names []string) ([]department.DepartmentResponse, error) {
	out := make([]department.DepartmentResponse, len(names))
	for i, n := range names {
		out[i] = department.DepartmentResponse{ID: uint(i + 1), Name: n}
	}
	return out, nil
}

func (f *fakeDepartmentSeeder) InvalidateCache(ctx context.Context) error {
	f.invalidated = true
	return nil
}

type fakeRoleSeeder struct {
	invalidateErr error
}

func (f *fakeRoleSeeder) BulkCreate(ctx context.Context, titles []string) ([]role.RoleResponse, error) {
	out := make([]role.RoleResponse, len(titles))
	for i, title := range titles {
		out[i] = role.RoleResponse{ID: uint(i + 1), Title: title}
	}
	return out, nil
}

func (f *fakeRoleSeeder) InvalidateCache(ctx context.Context) error {
	return f.invalidateErr
}

func uintPtr(v uint) *uint { return &v }

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("loads sample data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := employeeMock.NewMockRepository(ctrl)
		links := employeeMock.NewMockAssociationRepository(ctrl)
		schema := &fakeSchema{}
		depts := &fakeDepartmentSeeder{}
		roles := &fakeRoleSeeder{invalidateErr: errors.New("redis down")}

		employees.EXPECT().BulkCreate(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, emps []employee.Employee) error {
				assert.Len(t, emps, 3)
				assert.Equal(t, "Rahul Sharma", emps[0].Name)
				assert.Equal(t, "ankit.verma@example.com", emps[2].Email)
				for i := range emps {
					emps[i].ID = uint(i + 1)
				}
				return nil
			})
		gomock.InOrder(
			links.EXPECT().CreateDepartmentLink(ctx, &employee.EmployeeDepartment{EmployeeID: 1, DepartmentID: uintPtr(1)}).Return(nil),
			links.EXPECT().CreateRoleLink(ctx, &employee.EmployeeRole{EmployeeID: 1, RoleID: uintPtr(1)}).Return(nil),
			links.EXPECT().CreateDepartmentLink(ctx, &employee.EmployeeDepartment{EmployeeID: 2, DepartmentID: uintPtr(2)}).Return(nil),
			links.EXPECT().CreateRoleLink(ctx, &employee.EmployeeRole{EmployeeID: 2, RoleID: uintPtr(2)}).Return(nil),
			links.EXPECT().CreateDepartmentLink(ctx, &employee.EmployeeDepartment{EmployeeID: 3, DepartmentID: uintPtr(1)}).Return(nil),
			links.EXPECT().CreateRoleLink(ctx, &employee.EmployeeRole{EmployeeID: 3, RoleID: uintPtr(3)}).Return(nil),
		)

		svc := seed.NewService(schema, depts, roles, employees, links)
		err := svc.Seed(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, schema.resets)
		assert.True(t, depts.invalidated)
	})

	t.Run("reset fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schema := &fakeSchema{err: errors.New("permission denied for schema public")}

		svc := seed.NewService(schema, &fakeDepartmentSeeder{}, &fakeRoleSeeder{},
			employeeMock.NewMockRepository(ctrl), employeeMock.NewMockAssociationRepository(ctrl))
		err := svc.Seed(ctx)

		assert.EqualError(t, err, "permission denied for schema public")
	})

	t.Run("employee insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := employeeMock.NewMockRepository(ctrl)
		employees.EXPECT().BulkCreate(ctx, gomock.Any()).Return(errors.New("disk full"))

		svc := seed.NewService(&fakeSchema{}, &fakeDepartmentSeeder{}, &fakeRoleSeeder{},
			employees, employeeMock.NewMockAssociationRepository(ctrl))
		err := svc.Seed(ctx)

		assert.EqualError(t, err, "disk full")
	})
}

type fakeSeedService struct {
	err error
}

func (f fakeSeedService) Seed(ctx context.Context) error { return f.err }

func TestSeedHandler_Seed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		seed.RegisterRoutes(r, seed.NewHandler(fakeSeedService{}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seed_db", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Database seeded!"}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		r := gin.New()
		seed.RegisterRoutes(r, seed.NewHandler(fakeSeedService{err: errors.New("no such table: departments")}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seed_db", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"no such table: departments","code":"INTERNAL_ERROR"}`, w.Body.String())
	})
}
