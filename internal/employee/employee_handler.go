package employee

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseID reads a numeric path id. Anything else can't match a row.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all employees")

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(resp) == 0 {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "No employees found", nil)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employees": resp})
}

func (h *Handler) GetByID(c *gin.Context) {
	raw := c.Param("id")
	h.logger.Debug("http get employee details", zap.String("employee_id", raw))

	id, ok := parseID(raw)
	if !ok {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "No employee found with id "+raw, nil)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "No employee found with id "+raw, nil)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employee": resp})
}

func (h *Handler) GetByDepartment(c *gin.Context) {
	raw := c.Param("departmentId")
	h.logger.Debug("http get employees by department", zap.String("department_id", raw))

	id, ok := parseID(raw)
	if !ok {
		response.JSON(c, http.StatusOK, gin.H{"employees": []EmployeeDetails{}})
		return
	}

	resp, err := h.service.GetByDepartment(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employees": resp})
}

func (h *Handler) GetByRole(c *gin.Context) {
	raw := c.Param("roleId")
	h.logger.Debug("http get employees by role", zap.String("role_id", raw))

	id, ok := parseID(raw)
	if !ok {
		response.JSON(c, http.StatusOK, gin.H{"employees": []EmployeeDetails{}})
		return
	}

	resp, err := h.service.GetByRole(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employees": resp})
}

func (h *Handler) GetSortedByName(c *gin.Context) {
	dir := ParseSortDirection(c.Query("order"))
	h.logger.Debug("http get employees sorted by name", zap.String("order", string(dir)))

	resp, err := h.service.GetSortedByName(c.Request.Context(), dir)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employees": resp})
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	raw := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", raw))

	// An empty body is an empty patch. The patch has no required fields, so
	// a body that fails to decode takes the 500 path like any other failure.
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("http update employee decode failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	id, ok := parseID(raw)
	if !ok {
		h.logger.Warn("http update employee unknown id", zap.String("employee_id", raw))
		response.Empty(c)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		h.logger.Warn("http update employee unknown id", zap.Uint("employee_id", id))
		response.Empty(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http delete employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.logger.Debug("http delete employee", zap.Uint("employee_id", req.ID))

	deleted, err := h.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !deleted {
		response.Empty(c)
		return
	}

	response.Message(c, http.StatusOK, "Employee with ID "+strconv.FormatUint(uint64(req.ID), 10)+" deleted successfully")
}
