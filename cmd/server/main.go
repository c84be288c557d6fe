// Package main реализует точку входа HTTP сервиса devconnect.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpserver "devconnect/internal/adapters/http"
	"devconnect/internal/adapters/postgres"
	"devconnect/internal/adapters/services"
	"devconnect/internal/app"
	"devconnect/internal/config"
	"devconnect/internal/db"
	"devconnect/pkg/logger"
	"devconnect/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "APP_LOGGER_MODE"
	EnvLoggerLevel = "APP_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "devconnect service started"
	LogServiceShutdownDone = "devconnect service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, "migrations")
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		profileRepo := repoFactory.ProfileRepository()
		postRepo := repoFactory.PostRepository()

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetTokenTTL(),
			cfg.JWT.BCryptCost,
		)
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()
		avatarService := serviceFactory.AvatarService()

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(userRepo, passwordService, tokenService, avatarService)
		profileUseCase := app.NewProfileUseCase(profileRepo)
		postUseCase := app.NewPostUseCase(postRepo, userRepo)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpserver.SetupRouter(fiberApp, authUseCase, profileUseCase, postUseCase, tokenService, database)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
