package database

import (
	"fmt"

	"codecircle/internal/config"
	"codecircle/platform/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared gorm handle, set by InitDB.
var DB *gorm.DB

// InitDB opens the configured database and migrates the platform tables.
// The sqlite driver is the default so the platform runs with zero external
// dependencies; mysql is for real deployments.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&model.Workspace{}, &model.AIConfig{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	DB = db
	return db, nil
}
