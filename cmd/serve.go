package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	config "taskdesk.com/taskdesk/internal/configs"
	httpapi "taskdesk.com/taskdesk/internal/http"
	"taskdesk.com/taskdesk/internal/locking"
	repository "taskdesk.com/taskdesk/internal/repositories"
	"taskdesk.com/taskdesk/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API and the expiry sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		companyRepo := repository.NewCompanyRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		var sweepLock locking.SweepLock
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()
			sweepLock = locking.NewRedisSweepLock(redisClient, cfg.RedisSweepLockKey, cfg.RedisSweepLockTTL)
		}

		authService := services.NewAuthService(logger, userRepo, []byte(cfg.JWTSecret), cfg.JWTTTL)
		companyService := services.NewCompanyService(logger, companyRepo, userRepo)
		taskService := services.NewTaskService(logger, taskRepo, userRepo, cfg.GraceWindow())
		sweepService := services.NewSweepService(logger, taskRepo, sweepLock, cfg.SweepInterval)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go sweepService.Run(ctx)

		e := echo.New()
		handler := httpapi.NewHandler(authService, companyService, taskService)
		httpapi.Register(e, handler, authService, cfg.RateLimit)

		go func() {
			logger.Info().Str("addr", cfg.AppURL()).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL()); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info().Msg("HTTP server and expiry sweep shut down gracefully")
		return nil
	},
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
