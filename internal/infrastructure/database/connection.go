// internal/infrastructure/database/connection.go
package database

import (
	"fmt"
	"log"

	"github.com/your-org/snackshop-backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection wraps the GORM database handle
type Connection struct {
	db *gorm.DB
}

// NewConnection opens the order store. DB_MODE selects a local sqlite file
// (the default) or postgres.
func NewConnection(cfg *config.Config) (*Connection, error) {
	gormConfig := &gorm.Config{}
	if !cfg.App.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var db *gorm.DB
	var err error

	switch cfg.Database.Mode {
	case config.DBModeSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), gormConfig)
	case config.DBModePostgres:
		db, err = gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database mode %q", cfg.Database.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Database.Mode, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Printf("✅ Database connection established (%s)", cfg.Database.Mode)

	return &Connection{db: db}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM database instance
func (c *Connection) GetDB() *gorm.DB {
	return c.db
}

// Health checks the database connection health
func (c *Connection) Health() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
