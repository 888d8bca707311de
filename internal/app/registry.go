package app

import (
	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/role"
	"go-workforce/internal/seed"
	"go-workforce/internal/shared/config"
	"go-workforce/internal/shared/schema"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// registerModules builds every repository, service and handler once and
// mounts their routes. rdb may be nil.
func registerModules(
	router gin.IRouter,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	associationRepo := employee.NewAssociationRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb, cfg.CacheTTL)
	roleService := role.NewService(roleRepo, rdb, cfg.CacheTTL)
	employeeService := employee.NewServiceWithPublisher(
		employeeRepo,
		associationRepo,
		departmentService,
		roleService,
		employee.NewOutboxEventPublisher(outboxRepo),
	)
	seedService := seed.NewService(
		schema.New(gormDB),
		departmentService,
		roleService,
		employeeRepo,
		associationRepo,
	)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	roleHandler := role.NewHandler(roleService)
	employeeHandler := employee.NewHandler(employeeService)
	seedHandler := seed.NewHandler(seedService)

	// --- Routes Registration ---
	seed.RegisterRoutes(router, seedHandler)
	department.RegisterRoutes(router, departmentHandler)
	role.RegisterRoutes(router, roleHandler)
	employee.RegisterRoutes(router, employeeHandler, employee.RouteOptions{
		WriteRate:  rate.Limit(cfg.RateLimitPerSec),
		WriteBurst: cfg.RateLimitBurst,
		Redis:      rdb,
	})
}
