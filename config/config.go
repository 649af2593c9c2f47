package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	App struct {
		Host        string
		Port        int
		FrontendDir string
	}
	Store struct {
		Backend string
		Path    string
	}
	Database Database
}

type Database struct {
	URL             string
	PoolSize        int
	MaxConnLifetime string
	LogQueries      bool
	Migrate         bool
}

// Load decodes the TOML file at path and fills in defaults for empty fields.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.SetDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) SetDefaults() {
	if c.App.Host == "" {
		c.App.Host = "0.0.0.0"
	}
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendFile
	}
	if c.Store.Path == "" {
		c.Store.Path = "db.json"
	}
	if c.Database.PoolSize == 0 {
		c.Database.PoolSize = 5
	}
	if c.Database.MaxConnLifetime == "" {
		c.Database.MaxConnLifetime = "300s"
	}
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile:
	case BackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("store backend %q requires Database.URL", c.Store.Backend)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	return nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// PGOptions converts the database section into go-pg connection options.
func (d Database) PGOptions() (*pg.Options, error) {
	opt, err := pg.ParseURL(d.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	opt.PoolSize = d.PoolSize

	if d.MaxConnLifetime != "" {
		lifetime, err := time.ParseDuration(d.MaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MaxConnLifetime: %w", err)
		}
		opt.MaxConnAge = lifetime
	}

	return opt, nil
}
