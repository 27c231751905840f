package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cgpe/repopa/internal/api/handler"
	"github.com/cgpe/repopa/internal/api/middleware"
	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/service"
	mongorepo "github.com/cgpe/repopa/internal/infrastructure/db/mongo"
	redisrepo "github.com/cgpe/repopa/internal/infrastructure/db/redis"
	"github.com/cgpe/repopa/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered. The audit
// dispatcher is returned so main can start its workers.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("repopa"))

	// --- Dependencies ---
	authRepo := mongorepo.NewAuthRepository(db)
	roleRepo := mongorepo.NewRoleRepository(db)
	enteRepo := mongorepo.NewEnteRepository(db)
	poderRepo := mongorepo.NewPoderRepository(db)
	auditRepo := mongorepo.NewBitacoraRepository(db)
	folios := redisrepo.NewFolioSequencer(rdb)

	authService := service.NewAuthService(authRepo, roleRepo, jwtSecret, log)
	userService := service.NewUserService(authRepo, mongorepo.RoleIDs(), log)
	enteService := service.NewEnteService(enteRepo, folios, log)
	poderService := service.NewPoderService(enteRepo, poderRepo, log)
	reportService := service.NewReportService(enteRepo, poderRepo, log)
	auditService := service.NewAuditService(auditRepo, log)

	dispatcher := queue.NewDispatcher(0, auditService, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	enteHandler := handler.NewEnteHandler(enteService, dispatcher)
	poderHandler := handler.NewPoderHandler(poderService, dispatcher)
	reportHandler := handler.NewReportHandler(reportService)

	authMW := middleware.Auth(authService)
	readRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta)
	writeRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleCaptura)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated ---
	e.GET("/auth/me", authHandler.Me, authMW)

	v1 := e.Group("/v1", authMW)

	v1.GET("/entes", enteHandler.List, readRoles)
	v1.GET("/entes/:folio", enteHandler.Get, readRoles)
	v1.GET("/entes/:folio/poderes", poderHandler.Get, readRoles)
	v1.GET("/reportes/entes.csv", reportHandler.EntesCSV, readRoles)

	v1.POST("/entes", enteHandler.Create, writeRoles)
	v1.PUT("/entes/:folio", enteHandler.Update, writeRoles)
	v1.PUT("/entes/:folio/poderes", poderHandler.Replace, writeRoles)

	v1.DELETE("/entes/:folio", enteHandler.Delete, adminOnly)

	v1.GET("/usuarios", userHandler.List, adminOnly)
	v1.POST("/usuarios", userHandler.Create, adminOnly)
	v1.PUT("/usuarios/:id/password", userHandler.ChangePassword, adminOnly)
	v1.DELETE("/usuarios/:id", userHandler.Delete, adminOnly)

	return e, dispatcher
}
