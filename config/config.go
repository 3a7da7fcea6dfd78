package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// InitDB opens the configured database. MySQL is the production target;
// DB_DRIVER=sqlite keeps local development self-contained.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if getenv("DB_DRIVER", "mysql") == "sqlite" {
		return gorm.Open(sqlite.Open(getenv("DB_PATH", "store.db")), cfg)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getenv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_HOST", "127.0.0.1"),
		getenv("DB_PORT", "3306"),
		getenv("DB_NAME", "store_app"),
	)
	return gorm.Open(mysql.Open(dsn), cfg)
}
