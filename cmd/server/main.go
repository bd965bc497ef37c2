package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gefen_backend/internal/config"
	"gefen_backend/internal/handler"
	"gefen_backend/internal/logging"
	"gefen_backend/internal/middleware"
	"gefen_backend/internal/repository"
	"gefen_backend/internal/service"
	"gefen_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment variables")
	}
	logging.Setup()

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logging.Fatal("failed to load DB config", "error", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		logging.Fatal("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		slog.Warn("invalid JWT_EXPIRATION_HOURS, defaulting to 24", "error", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3000" // Default port
	}

	allowedOrigins := splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		logging.Fatal("failed to auto-migrate database", "error", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	adminRepo := repository.NewAdminRepository(dbPool)
	messageRepo := repository.NewMessageRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(adminRepo, jwtUtil)
	messageService := service.NewMessageService(messageRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	messageHandler := handler.NewMessageHandler(messageService)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.Use(corsMiddleware(allowedOrigins))

	// --- Initialize Middlewares ---
	adminAuthMW := middleware.AdminAuthMiddleware(jwtUtil, adminRepo)

	// --- Register Routes ---
	apiGroup := router.Group("/api/user")
	authHandler.RegisterAuthRoutes(apiGroup, adminAuthMW)
	messageHandler.RegisterMessageRoutes(apiGroup, adminAuthMW)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the back-end server!")
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("listen failed", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Fatal("server forced to shutdown", "error", err)
	}

	slog.Info("server exiting")
}

// splitOrigins parses the comma-separated CORS_ALLOWED_ORIGINS value
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// corsMiddleware reflects the request origin when it is on the allowlist.
// With an empty allowlist any origin is accepted, which keeps local
// development working without configuration.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := len(allowedOrigins) == 0
		for _, o := range allowedOrigins {
			if o == origin {
				allowed = true
				break
			}
		}
		if allowed && origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
