package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_FilePragmasOnEveryConnection(t *testing.T) {
	database, err := OpenDB(filepath.Join(t.TempDir(), "data", "readynurse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		conn, err := database.Conn(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })

		var fk, busy int
		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busy))
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode))
		assert.Equal(t, 1, fk)
		assert.Equal(t, busyTimeoutMs, busy)
		assert.Equal(t, "wal", mode)
	}
}

func TestDSN(t *testing.T) {
	assert.NotContains(t, dsn(":memory:"), "journal_mode")
	assert.Contains(t, dsn("/tmp/x.db"), "journal_mode")
	assert.Contains(t, dsn(":memory:"), "file::memory:?")
}
