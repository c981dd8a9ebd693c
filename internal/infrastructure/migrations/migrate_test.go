package migrations

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	require.NoError(t, Validate(FS, Dir))

	files, err := fs.Glob(FS, Dir+"/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestFundiMigrationContainsSchema(t *testing.T) {
	matches, err := fs.Glob(FS, Dir+"/*_create_fundi_applications.sql")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := fs.ReadFile(FS, matches[0])
	require.NoError(t, err)
	content := string(data)

	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS fundi_applications",
		"documents TEXT[]",
		"hourly_rate NUMERIC(12, 2) NOT NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_fundi_applications_user_id",
		"'PENDING', 'VERIFIED', 'REJECTED'",
	} {
		assert.True(t, strings.Contains(content, sub), "missing expected statement %q", sub)
	}
}

func TestValidate_RejectsBadFiles(t *testing.T) {
	badName := fstest.MapFS{
		"m/create_users.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
	}
	assert.ErrorContains(t, Validate(badName, "m"), "invalid migration filename")

	dupVersion := fstest.MapFS{
		"m/20260101000000_a.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
		"m/20260101000000_b.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
	}
	assert.ErrorContains(t, Validate(dupVersion, "m"), "duplicate migration version")

	missingDown := fstest.MapFS{
		"m/20260101000000_a.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")},
	}
	assert.ErrorContains(t, Validate(missingDown, "m"), "missing \"-- +goose Down\"")

	missingUp := fstest.MapFS{
		"m/20260101000000_a.sql": {Data: []byte("-- +goose Down\n")},
	}
	assert.ErrorContains(t, Validate(missingUp, "m"), "missing \"-- +goose Up\"")

	assert.Error(t, Validate(fstest.MapFS{}, "missing"))

	ignored := fstest.MapFS{
		"m/README.md": {Data: []byte("notes")},
	}
	assert.NoError(t, Validate(ignored, "m"))
}

func TestRunRequiresDB(t *testing.T) {
	assert.ErrorContains(t, Up(context.Background(), nil), "db is required")
	assert.ErrorContains(t, MigrateToVersion(context.Background(), nil, ""), "targetVersion is required")
	assert.ErrorContains(t, MigrateToVersion(context.Background(), nil, "abc"), "invalid version")
	assert.ErrorContains(t, MigrateToVersion(context.Background(), nil, "20260301090000"), "db is required")
}
