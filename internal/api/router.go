package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Harshan-mv/wechat/internal/api/handler"
	"github.com/Harshan-mv/wechat/internal/api/middleware"
	"github.com/Harshan-mv/wechat/internal/core/ports"
	"github.com/Harshan-mv/wechat/internal/core/service"
	mongodb "github.com/Harshan-mv/wechat/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil when the session store is in-memory.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, sessionSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("wechat"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	messageService := service.NewMessageService(messageRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions, sessionSecret)
	chatHandler := handler.NewChatHandler(userService, messageService)
	adminHandler := handler.NewAdminHandler(userService, messageService)

	requireSession := middleware.RequireSession(sessions, sessionSecret)
	requireAdmin := middleware.RequireAdmin(sessions, sessionSecret)

	// --- Public routes ---
	e.GET("/", authHandler.Landing)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	e.GET("/users", chatHandler.Users, requireSession)
	e.GET("/chat", chatHandler.Chat, requireSession)
	e.POST("/send", chatHandler.Send, requireSession)

	// --- Admin routes ---
	e.GET("/admin", adminHandler.Panel, requireAdmin)
	e.POST("/admin/verify", adminHandler.Verify, requireAdmin)
	e.GET("/admin/messages", adminHandler.Messages, requireAdmin)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?

	return e
}
