package config

// Service exposes read-only access to a validated Config keyed by field
// name. Values come straight from the validated struct, so the returned
// type always matches the schema and no coercion happens after load.
// Consumers receive a Service by explicit injection; there is no package
// level singleton.
type Service struct {
	cfg *Config
}

// NewService wraps an already-validated Config.
func NewService(cfg *Config) *Service {
	return &Service{cfg: cfg}
}

// Get returns the value for a dotted field name and whether the name is
// part of the schema.
func (s *Service) Get(key string) (any, bool) {
	switch key {
	case "environment":
		return s.cfg.Server.Environment, true
	case "port":
		return s.cfg.Server.Port, true
	case "server.read_timeout":
		return s.cfg.Server.ReadTimeout, true
	case "server.write_timeout":
		return s.cfg.Server.WriteTimeout, true
	case "database.host":
		return s.cfg.Database.Host, true
	case "database.port":
		return s.cfg.Database.Port, true
	case "database.username":
		return s.cfg.Database.User, true
	case "database.password":
		return s.cfg.Database.Password, true
	case "database.name":
		return s.cfg.Database.Name, true
	case "database.sslmode":
		return s.cfg.Database.SSLMode, true
	case "logging.level":
		return s.cfg.Logging.Level, true
	case "logging.format":
		return s.cfg.Logging.Format, true
	case "logging.service_name":
		return s.cfg.Logging.ServiceName, true
	default:
		return nil, false
	}
}

// String returns the value for key when the schema declares it as a string.
func (s *Service) String(key string) (string, bool) {
	value, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// Int returns the value for key when the schema declares it as an integer.
func (s *Service) Int(key string) (int, bool) {
	value, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}
