package repositories

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// WithTx stores a gorm transaction in context so repositories called with
// that context join it.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// conn returns the transaction carried by ctx, or db bound to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// gormTransactor implements Transactor
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor over db
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

// InTx runs fn inside one database transaction. Nested calls reuse the
// outer transaction.
func (t *gormTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
