// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewTimerRepository creates a new timer repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTimerRepository() repository.TimerRepository {
	return NewTimerRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. Errors returned by fn
// roll the transaction back and are returned unchanged; failures to begin or
// commit are reported as ErrTransactionFailed. A panic in fn rolls back and
// is re-raised.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}
}
