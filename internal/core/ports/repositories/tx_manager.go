package repositories

import "context"

// TxManager runs a function inside a single database transaction. The
// transaction travels in the context so that every repository call made
// through fn joins it; any error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
