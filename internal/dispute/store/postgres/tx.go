package postgres

import (
	"context"
	"database/sql"
	"time"

	"billsplit/internal/dispute/service"
	dErrors "billsplit/pkg/domain-errors"
	txcontext "billsplit/pkg/platform/tx"
)

const defaultDisputeTxTimeout = 5 * time.Second

// Tx runs a dispute unit of work inside one SQL transaction. The stores pick
// the transaction up from the context passed to fn.
type Tx struct {
	db      *sql.DB
	stores  service.Stores
	timeout time.Duration
}

// NewTx builds a transaction runner over db for the given postgres stores.
// A zero timeout uses the default.
func NewTx(db *sql.DB, stores service.Stores, timeout time.Duration) *Tx {
	if timeout <= 0 {
		timeout = defaultDisputeTxTimeout
	}
	return &Tx{db: db, stores: stores, timeout: timeout}
}

// RunInTx commits when fn returns nil and rolls back otherwise. The key is not
// used; the report row lock taken by FindOpenForUpdate serializes resolutions.
func (t *Tx) RunInTx(ctx context.Context, _ string, fn func(ctx context.Context, stores service.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodePersistenceFailure, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx), t.stores); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		if ctx.Err() != nil {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction timed out")
		}
		return dErrors.Wrap(err, dErrors.CodePersistenceFailure, "failed to commit transaction")
	}
	return nil
}
