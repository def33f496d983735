package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/ratelimit"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabase(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		tokens := auth.NewManager(
			cfg.AccessTokenSecret,
			cfg.RefreshTokenSecret,
			cfg.AccessTokenExpiry,
			cfg.RefreshTokenExpiry,
		)

		authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)
		taskService := services.NewTaskService(taskRepo)

		var limiterStore ratelimit.Store
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiterStore = ratelimit.NewRedisStore(redisClient, cfg.RedisLimiterPrefix, time.Minute)
		} else {
			limiterStore = ratelimit.NewMemoryStore(time.Minute)
		}

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(authService, taskService)
		httpapi.Register(e, handler, tokens, limiterStore, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
