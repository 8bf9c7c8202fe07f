package service

import (
	"context"

	"go.uber.org/zap"

	"tradejournal/internal/analytics"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

type TradeService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// TradePage is one page of trades plus a summary over every trade the filter matches.
type TradePage struct {
	Items   []models.Trade
	Total   int64
	Summary analytics.Summary
}

func (s *TradeService) List(ctx context.Context, params repository.ListTradesParams) (TradePage, error) {
	items, err := s.Repo.ListTrades(ctx, params)
	if err != nil {
		return TradePage{}, err
	}
	total, err := s.Repo.CountTrades(ctx, params)
	if err != nil {
		return TradePage{}, err
	}
	all, err := s.Repo.ListTradesForUser(ctx, params.UserID, params.Filter)
	if err != nil {
		return TradePage{}, err
	}
	if items == nil {
		items = []models.Trade{}
	}
	return TradePage{Items: items, Total: total, Summary: analytics.Summarize(all)}, nil
}

func (s *TradeService) Get(ctx context.Context, userID, id uint64) (*models.Trade, error) {
	item, err := s.Repo.GetTradeForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *TradeService) Create(ctx context.Context, userID uint64, in TradeInput) (*models.Trade, error) {
	if err := validatorInstance().Struct(in); err != nil {
		return nil, invalid(err)
	}
	item := in.toModel(userID)
	if err := checkTimes(item); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateTrade(ctx, item, in.Tags); err != nil {
		return nil, err
	}
	logger.FromContext(ctx, s.Logger).Info("trade created",
		zap.Uint64("user_id", userID),
		zap.Uint64("trade_id", item.ID),
		zap.String("symbol", item.Symbol),
	)
	return s.Get(ctx, userID, item.ID)
}

func (s *TradeService) Update(ctx context.Context, userID, id uint64, patch TradePatch) (*models.Trade, error) {
	if err := validatorInstance().Struct(patch); err != nil {
		return nil, invalid(err)
	}
	if patch.reopensWithExit() {
		return nil, invalidf("an open trade cannot carry exit_price or exit_time")
	}
	item, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	patch.apply(item)
	if err := checkTimes(item); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateTrade(ctx, item, patch.Tags); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *TradeService) Delete(ctx context.Context, userID, id uint64) error {
	n, err := s.Repo.DeleteTrades(ctx, userID, []uint64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkDelete removes the caller's trades among ids; foreign ids are skipped.
func (s *TradeService) BulkDelete(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, invalidf("trade_ids is required")
	}
	n, err := s.Repo.DeleteTrades(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx, s.Logger).Info("trades deleted", zap.Uint64("user_id", userID), zap.Int64("count", n))
	return n, nil
}

// BulkTag adds tags to the caller's trades among ids, keeping existing tags.
func (s *TradeService) BulkTag(ctx context.Context, userID uint64, ids []uint64, tags []string) (int64, error) {
	if len(ids) == 0 {
		return 0, invalidf("trade_ids is required")
	}
	if err := validatorInstance().Var(tags, "required,min=1,dive,required,max=64"); err != nil {
		return 0, invalidf("tags must be a non-empty list of names")
	}
	return s.Repo.AddTagsToTrades(ctx, userID, ids, tags)
}

func (s *TradeService) DeleteScreenshot(ctx context.Context, userID, id uint64) error {
	shot, err := s.Repo.GetScreenshotForUser(ctx, userID, id)
	if err != nil {
		return err
	}
	if shot == nil {
		return ErrNotFound
	}
	return s.Repo.DeleteScreenshot(ctx, shot.ID)
}
