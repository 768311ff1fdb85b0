package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/config"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// Manager runs the configured schema strategy followed by the column
// patches.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL unless the config asks for auto
// migration. Other drivers always auto migrate because the SQL scripts are
// MySQL specific.
func NewManager(cfg *config.DatabaseConfig, log logger.Interface) *Manager {
	var strategy Strategy

	driver := strings.ToLower(cfg.Driver)
	switch {
	case (driver == "" || driver == "mysql") && cfg.MigrationStrategy != "auto":
		strategy = NewGooseStrategy(cfg.ScriptsPath, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}

	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	added, err := EnsureColumns(db, m.logger, DefaultColumnPatches())
	if err != nil {
		return fmt.Errorf("column patches: %w", err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName(),
		"columns_added", len(added))
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
