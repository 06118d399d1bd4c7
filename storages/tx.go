package storages

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// DoTx runs fn in a transaction, committing if fn returns nil.
func DoTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func DoTx1[T any](ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) (T, error)) (ret T, err error) {
	err = DoTx(ctx, db, func(tx *sqlx.Tx) error {
		ret, err = fn(tx)
		return err
	})
	return
}
