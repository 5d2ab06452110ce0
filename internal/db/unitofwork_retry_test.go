package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errLocked = errors.New("database is locked")

func retryingUoW(t *testing.T) *SQLiteUnitOfWork {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	uow := NewSQLiteUnitOfWork(database)
	uow.retryable = func(err error) bool { return errors.Is(err, errLocked) }
	uow.pause = 0
	return uow
}

func TestWithinTx_RerunsBusyTransaction(t *testing.T) {
	uow := retryingUoW(t)

	calls := 0
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		calls++
		if calls < busyAttempts {
			return errLocked
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, busyAttempts, calls)
}

func TestWithinTx_GivesUpAfterBusyAttempts(t *testing.T) {
	uow := retryingUoW(t)

	calls := 0
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		calls++
		return errLocked
	})
	assert.ErrorIs(t, err, errLocked)
	assert.Equal(t, busyAttempts, calls)
}

func TestWithinTx_OtherErrorsNotRetried(t *testing.T) {
	uow := retryingUoW(t)

	calls := 0
	boom := errors.New("insufficient coins")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestIsBusy_PlainErrors(t *testing.T) {
	assert.False(t, IsBusy(nil))
	assert.False(t, IsBusy(errLocked))
}
