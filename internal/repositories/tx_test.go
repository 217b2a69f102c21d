package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInTx_Commit(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := InTx(ctx, db, func(ctx context.Context) error {
		called = true
		assert.NotNil(t, TxFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollbackOnError(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := InTx(ctx, db, func(ctx context.Context) error {
		return errors.New("boom")
	})

	assert.EqualError(t, err, "boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = InTx(ctx, db, func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_NoTx(t *testing.T) {
	ctx := context.Background()
	db, _ := newMockDB(t)

	// Without an ambient transaction the pool itself executes.
	assert.Equal(t, db, executor(ctx, db))
	assert.Nil(t, TxFromContext(ctx))
}
