package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradejournal/internal/analytics"
	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

func sampleTrade(userID uint64, pnl string, entry time.Time) models.Trade {
	return models.Trade{
		UserID:         userID,
		Symbol:         "EURUSD",
		Session:        "NY",
		Strategy:       "breakout",
		Type:           models.TradeTypeBuy,
		Status:         models.TradeStatusClosed,
		PnL:            decimal.RequireFromString(pnl),
		PositionSize:   decimal.NewFromInt(1000),
		RiskPercentage: decimal.NewFromInt(1),
		EntryTime:      entry,
	}
}

func fixedNow() time.Time {
	return time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
}

func TestAnalyticsSnapshotScopesToUser(t *testing.T) {
	repo := newStubRepo(
		sampleTrade(1, "27", time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC)),
		sampleTrade(1, "52.40", time.Date(2024, time.December, 14, 9, 0, 0, 0, time.UTC)),
		sampleTrade(2, "-999", time.Date(2024, time.December, 14, 9, 0, 0, 0, time.UTC)),
	)
	svc := &AnalyticsService{Repo: repo, Logger: zap.NewNop(), Now: fixedNow}

	snap, err := svc.Snapshot(context.Background(), 1, repository.TradeFilter{})
	require.NoError(t, err)
	require.Len(t, snap.Metrics, 6)
	assert.Equal(t, 79.4, snap.Metrics[0].Value)
	assert.Equal(t, 2.0, snap.Metrics[2].Value)
	assert.Len(t, snap.ProfitLoss, 2)
	assert.Equal(t, []string{"Dec 16", "Dec 23", "Dec 30", "Jan 06"}, snap.WeeklyHeatmap.Weeks)
}

func TestAnalyticsEmptyUser(t *testing.T) {
	svc := &AnalyticsService{Repo: newStubRepo(), Now: fixedNow}
	snap, err := svc.Snapshot(context.Background(), 7, repository.TradeFilter{})
	require.NoError(t, err)
	assert.Empty(t, snap.ProfitLoss)
	assert.NotNil(t, snap.ProfitLoss)
	for _, m := range snap.Metrics {
		assert.Zero(t, m.Value, m.Title)
	}
}

func TestAnalyticsFetchFailureIsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	repo := newStubRepo()
	repo.listErr = boom
	svc := &AnalyticsService{Repo: repo, Now: fixedNow}

	_, err := svc.Snapshot(context.Background(), 1, repository.TradeFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch trades")

	_, err = svc.Performance(context.Background(), 1, repository.TradeFilter{})
	assert.ErrorIs(t, err, boom)
	_, err = svc.Risk(context.Background(), 1, repository.TradeFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsViews(t *testing.T) {
	repo := newStubRepo(
		sampleTrade(1, "-500", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)),
	)
	svc := &AnalyticsService{Repo: repo, Aggregator: analytics.New(time.UTC), Now: fixedNow}

	risk, err := svc.Risk(context.Background(), 1, repository.TradeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5.0, risk.MaxDrawdown)
	assert.Equal(t, []analytics.Point{{Date: "2024-06-03", Value: -5}}, risk.Drawdown)

	perf, err := svc.Performance(context.Background(), 1, repository.TradeFilter{})
	require.NoError(t, err)
	require.Len(t, perf.Symbols, 1)
	assert.Equal(t, 500.0, perf.Symbols[0].MaxLoss)
	assert.Equal(t, []analytics.MonthlyPerformance{{Month: "Jun 2024", Value: -500}}, perf.Monthly)
}

func TestAnalyticsWithoutRepository(t *testing.T) {
	var svc *AnalyticsService
	_, err := svc.Snapshot(context.Background(), 1, repository.TradeFilter{})
	assert.Error(t, err)
}
