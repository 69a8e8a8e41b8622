package database

import (
	"fmt"
	"log"
	"os"

	"github.com/mergington/octofit-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global gorm handle used by every module.
var DB *gorm.DB

// InitDB opens the configured database connection.
func InitDB(cfg config.DatabaseConfig) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
			Colorful: true,
		},
	)

	var err error
	switch cfg.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{Logger: gormLogger})
	default:
		DB, err = gorm.Open(sqlite.Open(cfg.Sqlite.Path), &gorm.Config{Logger: gormLogger})
	}
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}

	fmt.Println("Database connection established.")
}
