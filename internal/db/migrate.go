package db

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"trainboard/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Profile{},
		&model.Station{},
		&model.Train{},
		&model.TrainSchedule{},
	}
}

// Migrate brings the schema up to date. Postgres uses the versioned SQL
// migrations; other dialects fall back to gorm AutoMigrate.
func Migrate(gormDB *gorm.DB) error {
	if gormDB.Dialector.Name() != DriverPostgres {
		return AutoMigrate(gormDB)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// AutoMigrate creates or alters tables from the model definitions.
func AutoMigrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
