package config

// Config holds all application configuration for both services.
// It is constructed once at process start and passed explicitly to the
// components that need it; nothing mutates it afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Only the user service connects to a database; the gateway leaves this empty.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains all authentication and authorization settings.
// The signing key is process-wide and read-only after startup.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	Issuer               string `mapstructure:"issuer"                 validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// GatewayConfig contains the edge gateway settings: the perimeter limits and
// the static route table mapping path prefixes to named backends.
type GatewayConfig struct {
	MaxBodyBytes     int64         `mapstructure:"max_body_bytes"     validate:"required,gt=0"`
	BackendTimeoutMs int           `mapstructure:"backend_timeout_ms" validate:"required,gt=0"`
	Routes           []RouteConfig `mapstructure:"routes"             validate:"dive"`
}

// RouteConfig binds a path prefix to a named backend service.
type RouteConfig struct {
	Prefix  string `mapstructure:"prefix"  validate:"required,startswith=/"`
	Service string `mapstructure:"service" validate:"required"`
	URL     string `mapstructure:"url"     validate:"required,url"`
}
