package config

import "time"

// Config is the validated configuration for the whole service.
// It is built exactly once by Load during startup and never mutated
// afterwards, so concurrent readers need no synchronization.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Environment  string        `validate:"required,oneof=development production"`
	Port         int           `validate:"required,gt=0"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,gt=0"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	SSLMode  string `validate:"required,oneof=disable require verify-ca verify-full"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	Level       string `validate:"required,oneof=trace debug info warn error fatal panic"`
	Format      string `validate:"required,oneof=json console"`
	ServiceName string `validate:"required"`
}
