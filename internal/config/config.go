package config

import (
	"time"
)

// Config is the root configuration of the record service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Cellar   CellarConfig   `yaml:"cellar"`
	GraphQL  GraphQLConfig  `yaml:"graphql"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimit is the number of /query requests allowed per minute for each
	// owner (or client IP when anonymous). 0 disables limiting.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued by
// the external user pool and signed with the shared secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"cellar"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// CellarConfig holds record service limits.
type CellarConfig struct {
	DefaultListLimit int `yaml:"default_list_limit" env:"CELLAR_DEFAULT_LIST_LIMIT" env-default:"1000"`
	MaxListLimit     int `yaml:"max_list_limit"     env:"CELLAR_MAX_LIST_LIMIT"     env-default:"1000"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	MaxDepth           int           `yaml:"max_depth"            env:"GRAPHQL_MAX_DEPTH"            env-default:"8"`
	MaxBodyBytes       int64         `yaml:"max_body_bytes"       env:"GRAPHQL_MAX_BODY_BYTES"       env-default:"1048576"`
	DataloaderWait     time.Duration `yaml:"dataloader_wait"      env:"GRAPHQL_DATALOADER_WAIT"      env-default:"2ms"`
	DataloaderMaxBatch int           `yaml:"dataloader_max_batch" env:"GRAPHQL_DATALOADER_MAX_BATCH" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClientConfig configures the cellar command-line client.
type ClientConfig struct {
	Endpoint   string        `yaml:"endpoint"    env:"CELLAR_ENDPOINT"    env-default:"http://localhost:8080/query"`
	Token      string        `yaml:"token"       env:"CELLAR_TOKEN"`
	Timeout    time.Duration `yaml:"timeout"     env:"CELLAR_TIMEOUT"     env-default:"15s"`
	FetchLimit int           `yaml:"fetch_limit" env:"CELLAR_FETCH_LIMIT" env-default:"1000"`
	NoticeTTL  time.Duration `yaml:"notice_ttl"  env:"CELLAR_NOTICE_TTL"  env-default:"3s"`
	Log        LogConfig     `yaml:"log"`
}
