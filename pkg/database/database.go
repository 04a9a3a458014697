package database

import (
	"fmt"

	"github.com/dustin/config-service/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BuildDSN renders the postgres connection string from validated database
// configuration. No defaulting happens here; the loader guarantees every
// field is present and well-formed.
func BuildDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// NewConnection opens a gorm connection using validated database configuration.
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(BuildDSN(cfg)), &gorm.Config{})
}
