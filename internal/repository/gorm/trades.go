package gormrepository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

// tradeOrderColumns lists the columns callers may sort trades by.
var tradeOrderColumns = map[string]string{
	"entry_time": "entry_time",
	"exit_time":  "exit_time",
	"pnl":        "pnl",
	"symbol":     "symbol",
	"created_at": "created_at",
}

func applyTradeFilter(query *gorm.DB, userID uint64, f repository.TradeFilter) *gorm.DB {
	query = query.Where("user_id = ?", userID)
	if f.Symbol != nil && strings.TrimSpace(*f.Symbol) != "" {
		query = query.Where("symbol = ?", strings.TrimSpace(*f.Symbol))
	}
	if f.Session != nil && strings.TrimSpace(*f.Session) != "" {
		query = query.Where("session = ?", strings.TrimSpace(*f.Session))
	}
	if f.Status != nil && strings.TrimSpace(*f.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*f.Status))
	}
	if f.Strategy != nil && strings.TrimSpace(*f.Strategy) != "" {
		query = query.Where("strategy = ?", strings.TrimSpace(*f.Strategy))
	}
	if f.DateFrom != nil && !f.DateFrom.IsZero() {
		query = query.Where("entry_time >= ?", f.DateFrom.UTC())
	}
	if f.DateTo != nil && !f.DateTo.IsZero() {
		query = query.Where("entry_time < ?", f.DateTo.UTC())
	}
	return query
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name asc")
}

func preloadScreenshots(db *gorm.DB) *gorm.DB {
	return db.Order("position asc").Order("id asc")
}

func (s *Store) ListTradesForUser(ctx context.Context, userID uint64, filter repository.TradeFilter) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyTradeFilter(s.db.WithContext(ctx).Model(&models.Trade{}), userID, filter)
	var items []models.Trade
	if err := query.
		Preload("Tags", preloadTags).
		Order("entry_time desc").
		Order("id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyTradeFilter(s.db.WithContext(ctx).Model(&models.Trade{}), params.UserID, params.Filter)
	query = applyOrder(query, tradeOrderColumns[strings.TrimSpace(params.OrderBy)], params.Asc, "entry_time")
	limit := repository.NormalizeLimit(params.Limit)
	offset := repository.NormalizeOffset(params.Offset)
	var items []models.Trade
	if err := query.
		Preload("Tags", preloadTags).
		Preload("Screenshots", preloadScreenshots).
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	query := applyTradeFilter(s.db.WithContext(ctx).Model(&models.Trade{}), params.UserID, params.Filter)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) GetTradeForUser(ctx context.Context, userID, id uint64) (*models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if id == 0 {
		return nil, nil
	}
	var item models.Trade
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Preload("Tags", preloadTags).
		Preload("Screenshots", preloadScreenshots).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateTrade(ctx context.Context, item *models.Trade, tagNames []string) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		item.Tags = tags
		return tx.Create(item).Error
	})
}

func (s *Store) UpdateTrade(ctx context.Context, item *models.Trade, tagNames []string) error {
	if s == nil || s.db == nil || item == nil || item.ID == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Screenshots").Save(item).Error; err != nil {
			return err
		}
		for i := range item.Screenshots {
			shot := &item.Screenshots[i]
			if shot.ID != 0 {
				continue
			}
			shot.TradeID = item.ID
			if err := tx.Create(shot).Error; err != nil {
				return err
			}
		}
		if tagNames == nil {
			return nil
		}
		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		assoc := tx.Model(item).Association("Tags")
		if len(tags) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(tags)
	})
}

func (s *Store) DeleteTrades(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := ownedTradeIDs(tx, userID, ids)
		if err != nil || len(owned) == 0 {
			return err
		}
		if err := tx.Where("trade_id IN ?", owned).Delete(&models.TradeScreenshot{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM trade_tags WHERE trade_id IN ?", owned).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", owned).Delete(&models.Trade{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (s *Store) AddTagsToTrades(ctx context.Context, userID uint64, ids []uint64, tagNames []string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	ids = cleanIDs(ids)
	if len(ids) == 0 || len(cleanStrings(tagNames)) == 0 {
		return 0, nil
	}
	var tagged int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trades []models.Trade
		if err := tx.Where("user_id = ? AND id IN ?", userID, ids).Find(&trades).Error; err != nil {
			return err
		}
		if len(trades) == 0 {
			return nil
		}
		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		for i := range trades {
			if err := tx.Model(&trades[i]).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		tagged = int64(len(trades))
		return nil
	})
	return tagged, err
}

func ownedTradeIDs(tx *gorm.DB, userID uint64, ids []uint64) ([]uint64, error) {
	var owned []uint64
	err := tx.Model(&models.Trade{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Pluck("id", &owned).Error
	return owned, err
}

// resolveTags returns the tags named in names, creating the missing ones.
func resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	names = cleanStrings(names)
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag := models.Tag{Name: name}
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
