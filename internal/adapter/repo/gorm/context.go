package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// bindTx stamps the open transaction onto the context so repo calls made
// inside RunInTx share it.
func bindTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// dbFrom returns the transaction bound to ctx, or base for a call made
// outside any transaction.
func dbFrom(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}
