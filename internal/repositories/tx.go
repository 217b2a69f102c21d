package repositories

import (
	"context"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// SetTxToContext stores a transaction in the context so repositories
// constructed with TxFromContext join it.
func SetTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// InTx runs fn inside a database transaction carried in the context. The
// transaction commits only if fn returns nil; any error or panic rolls back
// every effect performed through context-aware repositories.
func InTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	tx, err := db.Beginx()
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(SetTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	return nil
}

// executor resolves the statement executor for a context: the ambient
// transaction when one is present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// countByStatus groups one pharmacy's request rows by status. Shared by the
// fund and withdrawal request repositories; table is always a compile-time
// constant, never caller input.
func countByStatus(ctx context.Context, ec sqlx.ExtContext, table string, pharmacyID uuid.UUID) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) AS count FROM ` + table + ` WHERE pharmacy_id = $1 GROUP BY status`

	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := sqlx.SelectContext(ctx, ec, &rows, query, pharmacyID); err != nil {
		logger.Log.Infow("query", query, "args", []any{pharmacyID}, "error", err)
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
