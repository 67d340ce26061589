package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartscheduler/meeting-system/internal/api/handler"
	"github.com/smartscheduler/meeting-system/internal/api/middleware"
	"github.com/smartscheduler/meeting-system/internal/core/service"
	mongodb "github.com/smartscheduler/meeting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/smartscheduler/meeting-system/internal/infrastructure/db/redis"
)

const sessionTTL = 7 * 24 * time.Hour

// Deps carries the external resources the router wires together.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	// AppURL is the external base URL shareable invite links are built from.
	AppURL string
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("scheduler"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(deps.DB)
	meetingRepo := mongodb.NewMeetingRepository(deps.DB)
	inviteRepo := mongodb.NewInviteRepository(deps.DB)
	inviteCache := redisdb.NewInviteCache(deps.Redis)

	authService := service.NewAuthService(authRepo, deps.JWTSecret, sessionTTL)
	meetingService := service.NewMeetingService(meetingRepo, deps.Logger)
	inviteService := service.NewInviteService(inviteRepo, meetingRepo, inviteCache, deps.AppURL, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	requireAuth := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Meeting routes (owner-scoped, session required) ---
	meetings := e.Group("/meetings", requireAuth)
	meetings.POST("", meetingHandler.Create)
	meetings.GET("", meetingHandler.List)
	meetings.GET("/:id", meetingHandler.Get)
	meetings.PUT("/:id", meetingHandler.Update)
	meetings.DELETE("/:id", meetingHandler.Delete)

	// --- Invite routes ---
	// Creation requires a session; the owner comes from the verified token.
	// Resolution is public: the invite token is the whole credential.
	e.POST("/invite/create", inviteHandler.Create, requireAuth)
	e.GET("/invite/:token", inviteHandler.Resolve)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
