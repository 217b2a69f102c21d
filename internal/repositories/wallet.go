package repositories

import (
	"context"
	"strings"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// WalletRepository is the account store: one balance row per pharmacy.
// All mutations go through single-row UPDATEs, so Postgres row locks
// serialize concurrent mutations on the same pharmacy while leaving
// different pharmacies independent.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetOrCreate returns the pharmacy's account, creating a zeroed one on first
// touch. The returned flag reports whether the account was created by this
// call. Safe under concurrent calls for the same pharmacy: the insert is an
// ON CONFLICT no-op.
func (r *WalletRepository) GetOrCreate(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, bool, error) {
	const insertQuery = `
		INSERT INTO wallet_accounts (pharmacy_id)
		VALUES ($1)
		ON CONFLICT (pharmacy_id) DO NOTHING
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, insertQuery, pharmacyID)
	if err != nil {
		logger.Log.Errorw("failed to upsert wallet account", "pharmacy_id", pharmacyID, "error", err)
		return nil, false, err
	}
	inserted, _ := res.RowsAffected()

	account, err := r.Get(ctx, pharmacyID)
	if err != nil {
		return nil, false, err
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{pharmacyID},
		"created", inserted > 0,
		"error", nil,
	)

	return account, inserted > 0, nil
}

// Get retrieves the account row. Returns sql.ErrNoRows if the pharmacy has
// never touched its wallet.
func (r *WalletRepository) Get(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, error) {
	const query = `
		SELECT pharmacy_id, available_balance, pending_withdrawals,
		       total_earned, total_spent, version, last_transaction_at,
		       created_at, updated_at
		FROM wallet_accounts
		WHERE pharmacy_id = $1
	`

	var account models.WalletAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &account, query, pharmacyID)
	if err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{pharmacyID},
			"error", err,
		)
		return nil, err
	}
	return &account, nil
}

// ApplyCredit increases available_balance and total_earned by amount in a
// single guarded UPDATE and reports the balance movement.
func (r *WalletRepository) ApplyCredit(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) (models.BalanceDelta, error) {
	const query = `
		UPDATE wallet_accounts
		SET available_balance = available_balance + $2,
		    total_earned = total_earned + $2,
		    version = version + 1,
		    last_transaction_at = NOW(),
		    updated_at = NOW()
		WHERE pharmacy_id = $1
		RETURNING available_balance
	`

	var after decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &after, query, pharmacyID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, amount},
		"result", after,
		"error", err,
	)

	if err != nil {
		return models.BalanceDelta{}, err
	}
	return models.BalanceDelta{BalanceBefore: after.Sub(amount), BalanceAfter: after}, nil
}

// ApplyDebit decreases available_balance and increases total_spent by amount.
// The sufficiency check lives in the UPDATE predicate, re-evaluated after the
// row lock is acquired, so concurrent approvals cannot both pass it against
// the same balance. Returns sql.ErrNoRows when the balance is insufficient.
func (r *WalletRepository) ApplyDebit(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) (models.BalanceDelta, error) {
	const query = `
		UPDATE wallet_accounts
		SET available_balance = available_balance - $2,
		    total_spent = total_spent + $2,
		    version = version + 1,
		    last_transaction_at = NOW(),
		    updated_at = NOW()
		WHERE pharmacy_id = $1 AND available_balance >= $2
		RETURNING available_balance
	`

	var after decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &after, query, pharmacyID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, amount},
		"result", after,
		"error", err,
	)

	if err != nil {
		return models.BalanceDelta{}, err
	}
	return models.BalanceDelta{BalanceBefore: after.Add(amount), BalanceAfter: after}, nil
}

// ReservePending adds amount to the pending_withdrawals counter. The counter
// is display-only exposure: it never gates an approval.
func (r *WalletRepository) ReservePending(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) error {
	return r.adjustPending(ctx, pharmacyID, amount)
}

// ReleasePending subtracts amount from the pending_withdrawals counter,
// clamping at zero.
func (r *WalletRepository) ReleasePending(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) error {
	return r.adjustPending(ctx, pharmacyID, amount.Neg())
}

func (r *WalletRepository) adjustPending(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallet_accounts
		SET pending_withdrawals = GREATEST(pending_withdrawals + $2, 0),
		    updated_at = NOW()
		WHERE pharmacy_id = $1
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, pharmacyID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, amount},
		"error", err,
	)

	return err
}
