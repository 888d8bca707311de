package employee

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	// WriteRate and WriteBurst bound mutation requests per client IP.
	WriteRate  rate.Limit
	WriteBurst int
	// Redis enables Idempotency-Key handling on POST /employees/new.
	Redis *redis.Client
}

func RegisterRoutes(r gin.IRouter, handler *Handler, opts RouteOptions) {
	writeLimit := middleware.RateLimitByIP(opts.WriteRate, opts.WriteBurst)

	create := []gin.HandlerFunc{writeLimit}
	if opts.Redis != nil {
		create = append(create, middleware.Idempotency(opts.Redis))
	}
	create = append(create, handler.Create)

	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/details/:id", handler.GetByID)
		employees.GET("/department/:departmentId", handler.GetByDepartment)
		employees.GET("/role/:roleId", handler.GetByRole)
		employees.GET("/sort-by-name", handler.GetSortedByName)

		employees.POST("/new", create...)
		employees.POST("/update/:id", writeLimit, handler.Update)
		employees.POST("/delete", writeLimit, handler.Delete)
	}
}
