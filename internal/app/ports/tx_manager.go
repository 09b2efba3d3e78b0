package ports

import "context"

// TxManager scopes a unit of work: a state transition and its side effects
// (reward grant, event append) commit or roll back together.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
