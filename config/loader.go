package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment is the raw, untyped process environment the loader reads from.
// Keys may be missing and values may be malformed; Load sorts that out.
type Environment map[string]string

// OSEnvironment captures the current process environment.
func OSEnvironment() Environment {
	env := make(Environment)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return env
}

// Environment variables recognized by Load.
const (
	EnvServerEnv          = "SERVER_ENV"
	EnvServerPort         = "SERVER_PORT"
	EnvServerReadTimeout  = "SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout = "SERVER_WRITE_TIMEOUT"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBName             = "DB_NAME"
	EnvDBSSLMode          = "DB_SSLMODE"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvServiceName        = "SERVICE_NAME"
)

// Schema defaults. Only non-core settings carry defaults; the environment
// name, ports and database credentials must be supplied explicitly.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultSSLMode      = "disable"
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
	defaultServiceName  = "config-service"
)

// envVars maps struct field paths to the environment variable each field is
// extracted from, so validator failures can be reported against the variable
// the operator actually sets.
var envVars = map[string]string{
	"Server.Environment":  EnvServerEnv,
	"Server.Port":         EnvServerPort,
	"Server.ReadTimeout":  EnvServerReadTimeout,
	"Server.WriteTimeout": EnvServerWriteTimeout,
	"Database.Host":       EnvDBHost,
	"Database.Port":       EnvDBPort,
	"Database.User":       EnvDBUser,
	"Database.Password":   EnvDBPassword,
	"Database.Name":       EnvDBName,
	"Database.SSLMode":    EnvDBSSLMode,
	"Logging.Level":       EnvLogLevel,
	"Logging.Format":      EnvLogFormat,
	"Logging.ServiceName": EnvServiceName,
}

var validate = validator.New()

// Load extracts configuration field-by-field from env, coerces string values
// to their target types, and validates the result against the schema declared
// on the Config structs. It performs no I/O and is safe to call repeatedly
// with the same input, though the application calls it exactly once at
// startup.
//
// On failure the returned error is a *ValidationError naming every variable
// that is missing or invalid, not just the first.
func Load(env Environment) (*Config, error) {
	var fields []FieldError
	reported := make(map[string]bool)

	fail := func(envVar, reason string) {
		fields = append(fields, FieldError{Var: envVar, Reason: reason})
		reported[envVar] = true
	}

	// Coerce a port value. Zero means the variable was absent; the required
	// tag reports that case.
	portField := func(envVar string) int {
		raw := env[envVar]
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fail(envVar, "must be a positive integer, got "+strconv.Quote(raw))
			return 0
		}
		return n
	}

	durationField := func(envVar string, def time.Duration) time.Duration {
		raw := env[envVar]
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			fail(envVar, "must be a duration such as 30s, got "+strconv.Quote(raw))
			return def
		}
		return d
	}

	stringField := func(envVar, def string) string {
		if raw := env[envVar]; raw != "" {
			return raw
		}
		return def
	}

	cfg := &Config{
		Server: ServerConfig{
			Environment:  env[EnvServerEnv],
			Port:         portField(EnvServerPort),
			ReadTimeout:  durationField(EnvServerReadTimeout, defaultReadTimeout),
			WriteTimeout: durationField(EnvServerWriteTimeout, defaultWriteTimeout),
		},
		Database: DatabaseConfig{
			Host:     env[EnvDBHost],
			Port:     portField(EnvDBPort),
			User:     env[EnvDBUser],
			Password: env[EnvDBPassword],
			Name:     env[EnvDBName],
			SSLMode:  stringField(EnvDBSSLMode, defaultSSLMode),
		},
		Logging: LoggingConfig{
			Level:       stringField(EnvLogLevel, defaultLogLevel),
			Format:      stringField(EnvLogFormat, defaultLogFormat),
			ServiceName: stringField(EnvServiceName, defaultServiceName),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			envVar, ok := envVars[strings.TrimPrefix(fe.Namespace(), "Config.")]
			if !ok || reported[envVar] {
				// A variable that already failed coercion is reported once.
				continue
			}
			fail(envVar, describe(fe))
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return cfg, nil
}

// describe turns a validator failure into an operator-facing reason.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
