package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fundilink.backend/internal/config"
)

var (
	sqlOpen = sql.Open
	dbPing  = func(db *sql.DB) error { return db.Ping() }
)

// NewConnection opens a lib/pq pool and verifies it with a ping
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sqlOpen("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := dbPing(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// OpenGorm wraps an existing pool in GORM. Unique-index violations surface as gorm.ErrDuplicatedKey.
func OpenGorm(db *sql.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
	})
}
