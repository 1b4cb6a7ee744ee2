package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-admin/internal/controllers"
	"equipment-admin/internal/repositories"
	"equipment-admin/internal/services"
	"equipment-admin/pkg/config"
)

// InitRouter збирає весь граф залежностей і реєструє маршрути.
// redisClient може бути nil — тоді налаштування живуть у пам'яті процесу.
func InitRouter(
	e *echo.Echo,
	store repositories.RecordStoreInterface,
	directoryRepo repositories.DirectoryRepositoryInterface,
	redisClient *redis.Client,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: початок реєстрації маршрутів")

	api := e.Group("/api")

	var prefRepo repositories.PreferenceRepositoryInterface
	if redisClient != nil {
		prefRepo = repositories.NewRedisPreferenceRepository(redisClient)
	} else {
		prefRepo = repositories.NewMemoryPreferenceRepository()
	}

	// --- Сервіси ---
	directoryService := services.NewDirectoryService(directoryRepo, logger)
	needService := services.NewNeedService(store, directoryService, logger)
	issuanceService := services.NewIssuanceService(store, directoryService, logger)
	rejectedService := services.NewRejectedService(store, directoryService, logger)
	lifecycleService := services.NewLifecycleService(store, directoryService, logger)
	preferenceService := services.NewPreferenceService(prefRepo, logger)
	dashboardService := services.NewDashboardService(store, logger)

	// --- Контролери ---
	needCtrl := controllers.NewNeedController(needService, lifecycleService, preferenceService, logger, cfg.Table)
	issuanceCtrl := controllers.NewIssuanceController(issuanceService, lifecycleService, preferenceService, logger, cfg.Table)
	rejectedCtrl := controllers.NewRejectedController(rejectedService, lifecycleService, preferenceService, logger, cfg.Table)
	directoryCtrl := controllers.NewDirectoryController(directoryService, logger)
	preferenceCtrl := controllers.NewPreferenceController(preferenceService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	// --- Маршрути ---
	registerNeedRoutes(api, needCtrl)
	registerIssuanceRoutes(api, issuanceCtrl)
	registerRejectedRoutes(api, rejectedCtrl)
	registerDirectoryRoutes(api, directoryCtrl)
	registerPreferenceRoutes(api, preferenceCtrl)
	registerDashboardRoutes(api, dashboardCtrl)

	logger.Info("InitRouter: маршрути зареєстровано")
}
