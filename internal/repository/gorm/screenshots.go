package gormrepository

import (
	"context"

	"tradejournal/internal/models"
)

func (s *Store) GetScreenshotForUser(ctx context.Context, userID, id uint64) (*models.TradeScreenshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if id == 0 {
		return nil, nil
	}
	var item models.TradeScreenshot
	err := s.db.WithContext(ctx).
		Model(&models.TradeScreenshot{}).
		Select("trade_screenshots.*").
		Joins("JOIN trades ON trades.id = trade_screenshots.trade_id").
		Where("trade_screenshots.id = ? AND trades.user_id = ?", id, userID).
		First(&item).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteScreenshot(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	if id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.TradeScreenshot{}).Error
}
