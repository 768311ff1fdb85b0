package migration

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// Strategy brings a database schema up to date. models is only used by
// strategies that derive the schema from Go types.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts. The scripts are written
// for MySQL.
type GooseStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseStrategy(scriptsPath string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}
}

// sqlDB hands goose the underlying pool with the MySQL dialect selected.
func (s *GooseStrategy) sqlDB(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect("mysql"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}

	from, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("applying schema scripts", "scripts_path", s.scriptsPath, "from_version", from)

	if err := goose.Up(sqlDB, s.scriptsPath); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}
	s.logger.Infow("schema scripts applied", "from_version", from, "to_version", to)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// MigrateDown rolls back steps scripts, newest first.
func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}

	for i := 1; i <= steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsPath); err != nil {
			return fmt.Errorf("failed to roll back step %d: %w", i, err)
		}
	}
	s.logger.Infow("rolled back schema scripts", "steps", steps)
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return 0, err
	}
	return goose.GetDBVersion(sqlDB)
}

// Status prints the applied and pending scripts through goose's logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}
	return goose.Status(sqlDB, s.scriptsPath)
}

// Create writes a new timestamped SQL script with goose annotations.
func (s *GooseStrategy) Create(name string) error {
	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created", "name", name, "dir", s.scriptsPath)
	return nil
}
