package inventoryfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatra/internal/config"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideInventoryRepo, provideSearchService)

func provideInventoryRepo(db *gorm.DB, cfg *config.Config, logger *zap.Logger) repositories.InventoryRepository {
	return repositories.NewInventoryRepository(db, cfg.StoreTimeout, logger)
}

func provideSearchService(inventoryRepo repositories.InventoryRepository, logger *zap.Logger) services.SearchServiceInterface {
	return services.NewSearchService(inventoryRepo, logger)
}
