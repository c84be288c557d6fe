// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"devconnect/internal/adapters/http/auth"
	"devconnect/internal/adapters/http/middleware"
	"devconnect/internal/adapters/http/posts"
	"devconnect/internal/adapters/http/profiles"
	"devconnect/internal/ports/api"
	"devconnect/internal/ports/services"
)

// Pinger проверяет доступность хранилища для эндпоинта здоровья.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	profileUseCase api.ProfileUseCase,
	postUseCase api.PostUseCase,
	tokenService services.TokenService,
	pinger Pinger,
) {
	authHandler := auth.NewHandler(authUseCase)
	profileHandler := profiles.NewHandler(profileUseCase)
	postHandler := posts.NewHandler(postUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	authRequired := middleware.NewAuthMiddleware(tokenService)

	apiGroup := app.Group("/api")

	// Эндпоинт здоровья (публичный).
	apiGroup.Get("/health", func(c fiber.Ctx) error {
		if err := pinger.Ping(c.Context()); err != nil {
			if sendErr := c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			}); sendErr != nil {
				return fmt.Errorf("error sending health response: %w", sendErr)
			}
			return nil
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Регистрация (публичная).
	apiGroup.Post("/users", authHandler.Register)

	// Аутентификация.
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/", authHandler.Login)
	authRoutes.Get("/", authHandler.CurrentUser, authRequired)

	// Профили: чтение публичное, изменения требуют авторизации.
	profileRoutes := apiGroup.Group("/profile")
	profileRoutes.Get("/", profileHandler.ListAll)
	profileRoutes.Get("/user/:user_id", profileHandler.GetByUser)
	profileRoutes.Get("/me", profileHandler.GetMe, authRequired)
	profileRoutes.Post("/", profileHandler.Upsert, authRequired)
	profileRoutes.Delete("/", profileHandler.DeleteAccount, authRequired)
	profileRoutes.Put("/experience", profileHandler.AddExperience, authRequired)
	profileRoutes.Delete("/experience/:exp_id", profileHandler.RemoveExperience, authRequired)
	profileRoutes.Put("/education", profileHandler.AddEducation, authRequired)
	profileRoutes.Delete("/education/:edu_id", profileHandler.RemoveEducation, authRequired)

	// Посты (требуют авторизации).
	postRoutes := apiGroup.Group("/posts")
	postRoutes.Use(authRequired)
	postRoutes.Get("/", postHandler.List)
	postRoutes.Post("/", postHandler.Create)
	postRoutes.Get("/:id", postHandler.GetByID)
	postRoutes.Delete("/:id", postHandler.Delete)
	postRoutes.Put("/like/:id", postHandler.Like)
	postRoutes.Put("/unlike/:id", postHandler.Unlike)
	postRoutes.Put("/comment/:id", postHandler.AddComment)
	postRoutes.Delete("/comment/:id/:comment_id", postHandler.RemoveComment)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
