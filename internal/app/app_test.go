package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/config"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/shared/schema"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLiteApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	cfg := config.Config{
		DBDriver:     "sqlite",
		DBDSN:        filepath.Join(t.TempDir(), "workforce.db"),
		DBMaxRetries: 1,
		CacheTTL:     time.Minute,
	}

	db, err := connection.ConnectGORMWithRetry(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, schema.New(db).Migrate(context.Background()))

	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	Mount(r, db, nil, cfg)
	return r, db
}

func call(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func decodeEmployees(t *testing.T, raw json.RawMessage) []employee.EmployeeDetails {
	t.Helper()
	var emps []employee.EmployeeDetails
	require.NoError(t, json.Unmarshal(raw, &emps))
	return emps
}

func names(emps []employee.EmployeeDetails) []string {
	out := make([]string, len(emps))
	for i, e := range emps {
		out[i] = e.Name
	}
	return out
}

func TestWorkforceAPI_SQLite(t *testing.T) {
	r, db := setupSQLiteApp(t)

	status, body := call(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"ok"`, string(body["status"]))

	status, body = call(t, r, http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `"No employees found"`, string(body["message"]))

	status, body = call(t, r, http.MethodGet, "/seed_db", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"Database seeded!"`, string(body["message"]))

	t.Run("list all in id order", func(t *testing.T) {
		status, body := call(t, r, http.MethodGet, "/employees", "")
		require.Equal(t, http.StatusOK, status)

		emps := decodeEmployees(t, body["employees"])
		assert.Equal(t, []string{"Rahul Sharma", "Priya Singh", "Ankit Verma"}, names(emps))
		assert.Equal(t, "Engineering", emps[0].Department.Name)
		assert.Equal(t, "Software Engineer", emps[0].Role.Title)
		assert.Equal(t, "Marketing", emps[1].Department.Name)
		assert.Equal(t, "Product Manager", emps[2].Role.Title)
	})

	t.Run("sort by name desc", func(t *testing.T) {
		status, body := call(t, r, http.MethodGet, "/employees/sort-by-name?order=DESC", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{"Rahul Sharma", "Priya Singh", "Ankit Verma"}, names(decodeEmployees(t, body["employees"])))

		status, body = call(t, r, http.MethodGet, "/employees/sort-by-name?order=ASC", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{"Ankit Verma", "Priya Singh", "Rahul Sharma"}, names(decodeEmployees(t, body["employees"])))
	})

	t.Run("by department and role", func(t *testing.T) {
		_, body := call(t, r, http.MethodGet, "/employees/department/1", "")
		assert.Equal(t, []string{"Rahul Sharma", "Ankit Verma"}, names(decodeEmployees(t, body["employees"])))

		_, body = call(t, r, http.MethodGet, "/employees/role/2", "")
		assert.Equal(t, []string{"Priya Singh"}, names(decodeEmployees(t, body["employees"])))

		_, body = call(t, r, http.MethodGet, "/employees/department/77", "")
		assert.Empty(t, decodeEmployees(t, body["employees"]))
	})

	t.Run("create", func(t *testing.T) {
		status, body := call(t, r, http.MethodPost, "/employees/new", `{"name":"Neha Kapoor","email":"neha.kapoor@example.com","departmentId":2,"roleId":3}`)
		require.Equal(t, http.StatusCreated, status)
		assert.JSONEq(t, `4`, string(body["id"]))
		assert.JSONEq(t, `{"id":2,"name":"Marketing"}`, string(body["department"]))
		assert.JSONEq(t, `{"id":3,"title":"Product Manager"}`, string(body["role"]))

		status, body = call(t, r, http.MethodPost, "/employees/new", `{"name":"Vikram Rao","email":"vikram.rao@example.com"}`)
		require.Equal(t, http.StatusCreated, status)
		assert.JSONEq(t, `null`, string(body["department"]))
		assert.JSONEq(t, `null`, string(body["role"]))

		status, body = call(t, r, http.MethodPost, "/employees/new", `{"name":"   ","email":"b@x.com"}`)
		require.Equal(t, http.StatusCreated, status)
		assert.JSONEq(t, `"   "`, string(body["name"]))

		status, body = call(t, r, http.MethodPost, "/employees/new", `{"name":"No Email"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `"INVALID_INPUT"`, string(body["code"]))
	})

	t.Run("update", func(t *testing.T) {
		status, body := call(t, r, http.MethodPost, "/employees/update/1", `{"name":"Rahul S.","departmentId":2}`)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `"Rahul S."`, string(body["name"]))
		assert.JSONEq(t, `"rahul.sharma@example.com"`, string(body["email"]))
		assert.JSONEq(t, `{"id":2,"name":"Marketing"}`, string(body["department"]))
		// Rahul had a role and the patch omitted roleId.
		assert.JSONEq(t, `null`, string(body["role"]))

		// Vikram has no department, so the patch id is ignored.
		status, body = call(t, r, http.MethodPost, "/employees/update/5", `{"departmentId":1}`)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `null`, string(body["department"]))

		status, body = call(t, r, http.MethodPost, "/employees/update/99", `{"name":"Ghost"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, body)
	})

	t.Run("delete leaves orphaned links unresolved", func(t *testing.T) {
		status, body := call(t, r, http.MethodPost, "/employees/delete", `{"id":2}`)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(body["message"]), "2")

		status, body = call(t, r, http.MethodPost, "/employees/delete", `{"id":2}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, body)

		var orphans int64
		require.NoError(t, db.Model(&employee.EmployeeRole{}).Where("employee_id = ?", 2).Count(&orphans).Error)
		assert.Equal(t, int64(1), orphans)

		_, body = call(t, r, http.MethodGet, "/employees/role/2", "")
		assert.Empty(t, decodeEmployees(t, body["employees"]))

		status, _ = call(t, r, http.MethodGet, "/employees/details/2", "")
		assert.Equal(t, http.StatusNotFound, status)

		status, body = call(t, r, http.MethodGet, "/employees/details/3", "")
		require.Equal(t, http.StatusOK, status)
		var ankit employee.EmployeeDetails
		require.NoError(t, json.Unmarshal(body["employee"], &ankit))
		assert.Equal(t, "Engineering", ankit.Department.Name)
	})

	t.Run("mutations are written to the outbox", func(t *testing.T) {
		var events []kafka.OutboxEvent
		require.NoError(t, db.Find(&events).Error)

		types := make([]string, len(events))
		for i, e := range events {
			types[i] = e.EventType
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)
		}
		assert.ElementsMatch(t, []string{
			"employee_created", "employee_created", "employee_created",
			"employee_updated", "employee_updated",
			"employee_deleted",
		}, types)
	})

	t.Run("reseed restores sample data", func(t *testing.T) {
		status, _ := call(t, r, http.MethodGet, "/seed_db", "")
		require.Equal(t, http.StatusOK, status)

		_, body := call(t, r, http.MethodGet, "/employees", "")
		assert.Equal(t, []string{"Rahul Sharma", "Priya Singh", "Ankit Verma"}, names(decodeEmployees(t, body["employees"])))

		_, body = call(t, r, http.MethodGet, "/departments", "")
		assert.JSONEq(t, `[{"id":1,"name":"Engineering"},{"id":2,"name":"Marketing"}]`, string(body["departments"]))
	})
}
