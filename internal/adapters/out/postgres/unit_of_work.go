// Package postgres implements the unit of work over gorm transactions.
//
// Every command handler creates its own unit of work, begins it, works through the
// repositories it hands out and commits. Repositories obtained after Begin share the
// transaction, so row locks taken by one of them hold for the others until Commit
// or Rollback.
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	c, err := uow.CourierRepository().GetForUpdate(ctx, courierID)
//	...
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"candydelivery/internal/adapters/out/postgres/courierrepo"
	"candydelivery/internal/adapters/out/postgres/couriertyperepo"
	"candydelivery/internal/adapters/out/postgres/orderrepo"
	"candydelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection pool.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork holds at most one open gorm transaction. Without a transaction its
// repositories run every statement on the pool directly.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit commits the open transaction and closes it.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. After a successful Commit it returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CourierRepository returns courier persistence bound to the open transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

// CourierTypeRepository returns read access to the type catalog. Reads inside a
// transaction see the catalog as of the transaction snapshot.
func (uow *GormUnitOfWork) CourierTypeRepository() ports.CourierTypeRepository {
	return couriertyperepo.NewGormCourierTypeRepository(uow.conn())
}

// OrderRepository returns order persistence bound to the open transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
