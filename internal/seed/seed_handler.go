package seed

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("seed.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("seed request failed",
			zap.Int("status", httpErr.Status),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Message(c, http.StatusOK, "Database seeded!")
}

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/seed_db", h.Seed)
}
