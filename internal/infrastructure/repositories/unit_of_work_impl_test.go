package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec("INSERT INTO services(id,name) VALUES (?,?)", uuid.New().String(), "Plumbing").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("services").Count(&count).Error)
	require.Equal(t, int64(1), count)

	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := GetDB(ctx, db).Exec("INSERT INTO services(id,name) VALUES (?,?)", uuid.New().String(), "Electrical").Error; err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.EqualError(t, err, "force rollback")

	require.NoError(t, db.Table("services").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		outer := ctx.Value(txKey)
		return u.Do(ctx, func(inner context.Context) error {
			require.Equal(t, outer, inner.Value(txKey))
			if err := GetDB(inner, db).Exec("INSERT INTO locations(id,name) VALUES (?,?)", uuid.New().String(), "Nairobi").Error; err != nil {
				return err
			}
			return errors.New("inner failure")
		})
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Table("locations").Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestUnitOfWork_WithLockAndGetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	ctx := u.WithLock(context.Background())
	require.Equal(t, true, ctx.Value(lockKey))
	require.NotNil(t, GetDB(ctx, db))
	require.NotNil(t, u.GetDB(context.Background()))

	// without an open transaction the lock marker is ignored
	require.Equal(t, db, lockForUpdate(ctx, db))

	// sqlite has no row locks, so the marker is ignored inside a transaction as well
	tx := db.Begin()
	t.Cleanup(func() { tx.Rollback() })
	txCtx := context.WithValue(ctx, txKey, tx)
	require.Equal(t, tx, lockForUpdate(txCtx, tx))
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestUnitOfWork_DoCommitFailure_WithHook(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	origCommit := commitTx
	t.Cleanup(func() { commitTx = origCommit })
	commitTx = func(tx *gorm.DB) error {
		return errors.New("forced commit fail")
	}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec("INSERT INTO services(id,name) VALUES (?,?)", uuid.New().String(), "Carpentry").Error
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to commit transaction")
}
