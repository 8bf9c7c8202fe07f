package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tradejournal/internal/analytics"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

// AnalyticsService fetches a user's trades once per call and hands them to
// the aggregator.
type AnalyticsService struct {
	Repo       repository.TradeRepository
	Aggregator analytics.Aggregator
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *AnalyticsService) Snapshot(ctx context.Context, userID uint64, filter repository.TradeFilter) (analytics.Snapshot, error) {
	trades, err := s.fetch(ctx, userID, filter)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	snap := s.Aggregator.Compute(trades, s.now())
	logger.FromContext(ctx, s.Logger).Debug("analytics computed",
		zap.Uint64("user_id", userID),
		zap.Int("trades", len(trades)),
		zap.Int("strategies", len(snap.StrategyPerformance)),
	)
	return snap, nil
}

func (s *AnalyticsService) Performance(ctx context.Context, userID uint64, filter repository.TradeFilter) (analytics.PerformanceView, error) {
	trades, err := s.fetch(ctx, userID, filter)
	if err != nil {
		return analytics.PerformanceView{}, err
	}
	return s.Aggregator.Performance(trades), nil
}

func (s *AnalyticsService) Risk(ctx context.Context, userID uint64, filter repository.TradeFilter) (analytics.RiskView, error) {
	trades, err := s.fetch(ctx, userID, filter)
	if err != nil {
		return analytics.RiskView{}, err
	}
	return s.Aggregator.Risk(trades), nil
}

func (s *AnalyticsService) fetch(ctx context.Context, userID uint64, filter repository.TradeFilter) ([]models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("fetch trades: repository not configured")
	}
	trades, err := s.Repo.ListTradesForUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}
	return trades, nil
}

func (s *AnalyticsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
