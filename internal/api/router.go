package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/PUNEET-EMM/Project-Management/internal/api/handler"
	"github.com/PUNEET-EMM/Project-Management/internal/api/middleware"
	"github.com/PUNEET-EMM/Project-Management/internal/core/permission"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// Services bundles the use-case implementations the router depends on.
type Services struct {
	Auth     ports.AuthService
	Projects ports.ProjectService
	Tasks    ports.TaskService
	Users    ports.UserService
	Reports  ports.ReportService
}

// Deps carries everything needed to assemble the HTTP surface.
type Deps struct {
	Store     *store.Store
	Services  Services
	JWTSecret string
	Health    *handler.HealthDependenciesHandler
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("projectmgmt"))

	authHandler := handler.NewAuthHandler(d.Services.Auth)
	projectHandler := handler.NewProjectHandler(d.Services.Projects)
	taskHandler := handler.NewTaskHandler(d.Services.Tasks)
	userHandler := handler.NewUserHandler(d.Services.Users)
	reportHandler := handler.NewReportHandler(d.Services.Reports)

	authMW := middleware.Auth(d.JWTSecret)
	actorMW := middleware.LoadActor(d.Store)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", handler.NewHealthHandler().Liveness)
	if d.Health != nil {
		e.GET("/health/ready", d.Health.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	auth := e.Group("/auth", authMW, actorMW)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/impersonate", authHandler.Impersonate, middleware.Permit(permission.CanManageRoles))

	v1 := e.Group("/v1", authMW, actorMW)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update)
	v1.DELETE("/projects/:id", projectHandler.Delete)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PUT("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)
	v1.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)

	v1.GET("/users", userHandler.List)
	v1.PATCH("/users/:id/role", userHandler.UpdateRole, middleware.Permit(permission.CanManageRoles))
	v1.GET("/teams", userHandler.Teams)

	v1.GET("/reports", reportHandler.Summary, middleware.Permit(permission.CanViewReports))
	v1.GET("/dashboard", reportHandler.Dashboard)

	return e
}
