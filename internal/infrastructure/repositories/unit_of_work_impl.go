package repositories

import (
	"context"
	"fmt"

	domainRepos "fundilink.backend/internal/domain/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contextKey string

const (
	txKey   contextKey = "tx_db"
	lockKey contextKey = "tx_lock"
)

var commitTx = func(tx *gorm.DB) error {
	return tx.Commit().Error
}

// UnitOfWorkImpl implements UnitOfWork using GORM
type UnitOfWorkImpl struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new UnitOfWork
func NewUnitOfWork(db *gorm.DB) domainRepos.UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

// Do executes fn within a transaction. A nested Do joins the outer transaction.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	if err := commitTx(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithLock requests row locks for reads that support them
func (u *UnitOfWorkImpl) WithLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, lockKey, true)
}

// GetDB returns the transaction bound to ctx, or the base DB
func (u *UnitOfWorkImpl) GetDB(ctx context.Context) *gorm.DB {
	return GetDB(ctx, u.db)
}

// GetDB returns the transaction bound to ctx, falling back to the given DB.
// Repositories in this package route every query through it.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// lockForUpdate adds FOR UPDATE when ctx was marked by WithLock and a transaction is open.
// SQLite has no row locks; its transactions already serialize writers.
func lockForUpdate(ctx context.Context, db *gorm.DB) *gorm.DB {
	locked, _ := ctx.Value(lockKey).(bool)
	if _, inTx := ctx.Value(txKey).(*gorm.DB); locked && inTx && db.Dialector.Name() != "sqlite" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
