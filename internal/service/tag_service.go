package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

type TagService struct {
	Repo   repository.TagRepository
	Logger *zap.Logger
}

func (s *TagService) List(ctx context.Context, userID uint64) ([]models.TagUsage, error) {
	items, err := s.Repo.ListTagUsage(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.TagUsage{}
	}
	return items, nil
}

func (s *TagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if err := validatorInstance().Var(name, "required,max=64"); err != nil {
		return nil, invalidf("name must be 1-64 characters")
	}
	existing, err := s.Repo.GetTagByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTagExists
	}
	item := &models.Tag{Name: name}
	if err := s.Repo.CreateTag(ctx, item); err != nil {
		// A concurrent create can win between the lookup and the insert.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTagExists
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a tag unless trades of other users still carry it.
func (s *TagService) Delete(ctx context.Context, userID, id uint64) error {
	tag, err := s.Repo.GetTagByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrNotFound
	}
	used, err := s.Repo.TagUsedByOtherUsers(ctx, id, userID)
	if err != nil {
		return err
	}
	if used {
		return ErrTagInUse
	}
	return s.Repo.DeleteTag(ctx, id)
}

// PruneOrphans deletes tags that no trade references.
func (s *TagService) PruneOrphans(ctx context.Context) (int64, error) {
	n, err := s.Repo.DeleteOrphanTags(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.FromContext(ctx, s.Logger).Info("orphan tags pruned", zap.Int64("count", n))
	}
	return n, nil
}
