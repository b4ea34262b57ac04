package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"content_manager/internal/config"
	"content_manager/internal/handler"
	"content_manager/internal/repository"
	"content_manager/internal/service"
	"content_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		logrus.Fatalf("Failed to load app config: %v", err)
	}
	config.SetupLogging(appCfg)
	gin.SetMode(appCfg.GinMode)

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logrus.Fatalf("Failed to load DB config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.RunMigrations(ctx, dbPool); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Wiring ---
	jwtUtil := utils.NewJWTUtil(appCfg.JWTSecret, appCfg.TokenTTL)

	userRepo := repository.NewUserRepository(dbPool)
	sessionRepo := repository.NewSessionRepository(dbPool)
	contentRepo := repository.NewContentRepository(dbPool)

	authService := service.NewAuthService(userRepo, sessionRepo, jwtUtil, service.AuthOptions{
		AllowAdminSignup:  appCfg.AllowAdminSignup,
		InitialAdminEmail: appCfg.InitialAdminEmail,
	})
	contentService := service.NewContentService(contentRepo)

	router := handler.NewRouter(authService, contentService)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + appCfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server starting on port %s", appCfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
