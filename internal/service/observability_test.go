package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapUseCaseObserver_LogsSuccessAndFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewZapUseCaseObserver(zap.New(core))

	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()
	p := testutil.NewTestProfile("Obs", testutil.WithCoins(60))
	require.NoError(t, profiles.Create(ctx, p))
	svc := NewShopService(profiles, testutil.NewTestUoW(database), obs)

	_, err := svc.Buy(ctx, p.ID, "border_stethoscope")
	require.NoError(t, err)
	_, err = svc.Buy(ctx, p.ID, "border_gold")
	require.True(t, errors.Is(err, repository.ErrInsufficientCoins))

	entries := logs.FilterMessage("service_use_case").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "shop-buy", entries[0].ContextMap()["use_case"])
	assert.Equal(t, true, entries[0].ContextMap()["success"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(150), entries[1].ContextMap()["price"])
}

func TestNewZapUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewZapUseCaseObserver(nil))
}
