package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns < 0 || c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns must be >= min_conns >= 0 (got %d, %d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.Database.HealthCheck < 0 || c.Database.ConnectTimeout < 0 {
		return fmt.Errorf("database.health_check and database.connect_timeout must be >= 0")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if c.Cellar.MaxListLimit <= 0 {
		return fmt.Errorf("cellar.max_list_limit must be > 0 (got %d)", c.Cellar.MaxListLimit)
	}
	if c.Cellar.DefaultListLimit <= 0 || c.Cellar.DefaultListLimit > c.Cellar.MaxListLimit {
		return fmt.Errorf("cellar.default_list_limit must be in [1, %d] (got %d)",
			c.Cellar.MaxListLimit, c.Cellar.DefaultListLimit)
	}

	if c.GraphQL.MaxDepth <= 0 {
		return fmt.Errorf("graphql.max_depth must be > 0 (got %d)", c.GraphQL.MaxDepth)
	}
	if c.GraphQL.DataloaderMaxBatch <= 0 {
		return fmt.Errorf("graphql.dataloader_max_batch must be > 0 (got %d)", c.GraphQL.DataloaderMaxBatch)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// Validate checks the client configuration.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL (got %q)", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
	}
	if c.FetchLimit <= 0 {
		return fmt.Errorf("fetch_limit must be > 0 (got %d)", c.FetchLimit)
	}
	if c.NoticeTTL <= 0 {
		return fmt.Errorf("notice_ttl must be > 0 (got %s)", c.NoticeTTL)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}
