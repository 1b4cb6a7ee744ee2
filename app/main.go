// Файл: main.go

package main

import (
	"context"
	"net/http"

	"equipment-admin/internal/repositories"
	"equipment-admin/internal/routes"
	"equipment-admin/pkg/config"
	"equipment-admin/pkg/customvalidator"
	apperrors "equipment-admin/pkg/errors"
	applogger "equipment-admin/pkg/logger"
	"equipment-admin/pkg/utils"
	"equipment-admin/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Паніка при обробці запиту",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутрішня помилка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Помилка реєстрації кастомних правил валідації", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// Сховище записів та довідники живуть у пам'яті процесу і на кожному
	// старті наповнюються посівними даними.
	store := repositories.NewRecordStore()
	directoryRepo := repositories.NewDirectoryRepository()
	seeders.Seed(store, directoryRepo, logger)

	// Redis — опційне сховище налаштувань панелі.
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Warn("Redis недоступний, налаштування зберігатимуться у пам'яті",
				zap.Error(err), zap.String("address", cfg.Redis.Address))
			redisClient = nil
		}
	}

	routes.InitRouter(e, store, directoryRepo, redisClient, logger, cfg)

	logger.Info("🚀 Сервер запущено", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Помилка запуску сервера", zap.Error(err))
	}
}
