package gormrepository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

func (s *Store) ListTagUsage(ctx context.Context, userID uint64) ([]models.TagUsage, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.TagUsage
	err := s.db.WithContext(ctx).
		Table("tags").
		Select("tags.id, tags.name, tags.created_at, COUNT(trades.id) AS trades_count").
		Joins("LEFT JOIN trade_tags ON trade_tags.tag_id = tags.id").
		Joins("LEFT JOIN trades ON trades.id = trade_tags.trade_id AND trades.user_id = ?", userID).
		Group("tags.id, tags.name, tags.created_at").
		Order("tags.name asc").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetTagByID(ctx context.Context, id uint64) (*models.Tag, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if id == 0 {
		return nil, nil
	}
	var item models.Tag
	err := s.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", id).First(&item).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var item models.Tag
	err := s.db.WithContext(ctx).Model(&models.Tag{}).Where("name = ?", name).First(&item).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateTag(ctx context.Context, item *models.Tag) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.Name = strings.TrimSpace(item.Name)
	err := s.db.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("tag %q: %w", item.Name, repository.ErrConflict)
	}
	return err
}

func (s *Store) TagUsedByOtherUsers(ctx context.Context, tagID, userID uint64) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	var n int64
	err := s.db.WithContext(ctx).
		Table("trade_tags").
		Joins("JOIN trades ON trades.id = trade_tags.trade_id").
		Where("trade_tags.tag_id = ? AND trades.user_id <> ?", tagID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) DeleteTag(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	if id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM trade_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Tag{}).Error
	})
}

func (s *Store) DeleteOrphanTags(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	used := s.db.WithContext(ctx).Table("trade_tags").Select("tag_id")
	res := s.db.WithContext(ctx).
		Where("id NOT IN (?)", used).
		Delete(&models.Tag{})
	return res.RowsAffected, res.Error
}
