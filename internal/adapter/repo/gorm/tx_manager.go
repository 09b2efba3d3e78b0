package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager opens a database transaction and binds it to the context so
// every repo call inside the closure joins it.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindTx(ctx, tx))
	})
}
