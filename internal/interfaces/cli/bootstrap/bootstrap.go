// Package bootstrap holds the start-up steps shared by every command.
package bootstrap

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/config"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/database"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// Options are the flags every command accepts.
type Options struct {
	Env        string
	ConfigPath string
}

// Resolve applies the ENV override.
func (o *Options) Resolve() {
	if envVar := os.Getenv("ENV"); envVar != "" {
		o.Env = envVar
	}
}

// LoadConfig reads the configuration and initializes the process logger.
func LoadConfig(opts Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(opts.Env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// Open is LoadConfig plus a database connection. The caller closes the
// database with database.Close.
func Open(opts Options) (*config.Config, logger.Interface, *gorm.DB, error) {
	cfg, log, err := LoadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Infow("database connection established",
		"driver", cfg.Database.Driver,
		"max_open_conns", cfg.Database.MaxOpenConns)

	return cfg, log, db, nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
