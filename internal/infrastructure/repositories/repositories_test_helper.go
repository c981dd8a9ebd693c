package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		verification TEXT NOT NULL DEFAULT 'unverified',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCatalogTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE locations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFundiTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createCatalogTables(t, db)
	mustExec(t, db, `CREATE TABLE fundi_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		service_id TEXT NOT NULL,
		location_id TEXT,
		hourly_rate TEXT NOT NULL,
		documents TEXT,
		verification_status TEXT NOT NULL DEFAULT 'PENDING',
		applied_at DATETIME NOT NULL,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
