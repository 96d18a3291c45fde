package dbfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatra/internal/config"
	"yatra/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.AutoMigrate),
)

func provideDB(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	return infra.InitPostgresql(cfg, logger)
}
