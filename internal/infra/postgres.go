package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yatra/internal/config"
	"yatra/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	return db
}

// AutoMigrate keeps the budget ledger schema current. The five inventory
// tables are seeded externally; migrating them here only creates the tables
// when they are missing, it never rewrites seeded rows.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) {
	err := db.AutoMigrate(
		&db_models.Flight{},
		&db_models.Hotel{},
		&db_models.Train{},
		&db_models.Bus{},
		&db_models.Attraction{},
		&db_models.BudgetPlan{},
		&db_models.BudgetItem{},
		&db_models.ExpenseRecord{},
	)
	if err != nil {
		logger.Fatal("auto migration failed", zap.Error(err))
	}
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close postgres connection", zap.Error(err))
	}
}
