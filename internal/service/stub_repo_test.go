package service

import (
	"context"
	"sort"
	"strings"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

var _ repository.Repository = (*stubRepo)(nil)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Filters other than the user id are ignored.
type stubRepo struct {
	trades  map[uint64]*models.Trade
	tags    map[uint64]*models.Tag
	nextID  uint64
	listErr error
}

func newStubRepo(trades ...models.Trade) *stubRepo {
	s := &stubRepo{trades: map[uint64]*models.Trade{}, tags: map[uint64]*models.Tag{}}
	for i := range trades {
		item := trades[i]
		if item.ID == 0 {
			item.ID = s.id()
		}
		s.trades[item.ID] = &item
	}
	return s
}

func (s *stubRepo) id() uint64 {
	s.nextID++
	return s.nextID
}

func (s *stubRepo) owned(userID uint64) []models.Trade {
	var out []models.Trade
	for _, t := range s.trades {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryTime.After(out[j].EntryTime) })
	return out
}

func (s *stubRepo) ListTradesForUser(ctx context.Context, userID uint64, filter repository.TradeFilter) ([]models.Trade, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.owned(userID), nil
}

func (s *stubRepo) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	all := s.owned(params.UserID)
	if params.Offset >= len(all) {
		return nil, nil
	}
	all = all[params.Offset:]
	if params.Limit > 0 && params.Limit < len(all) {
		all = all[:params.Limit]
	}
	return all, nil
}

func (s *stubRepo) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	return int64(len(s.owned(params.UserID))), nil
}

func (s *stubRepo) GetTradeForUser(ctx context.Context, userID, id uint64) (*models.Trade, error) {
	t, ok := s.trades[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (s *stubRepo) CreateTrade(ctx context.Context, item *models.Trade, tagNames []string) error {
	item.ID = s.id()
	item.Tags = s.resolve(tagNames)
	for i := range item.Screenshots {
		item.Screenshots[i].ID = s.id()
		item.Screenshots[i].TradeID = item.ID
	}
	cp := *item
	s.trades[item.ID] = &cp
	return nil
}

func (s *stubRepo) UpdateTrade(ctx context.Context, item *models.Trade, tagNames []string) error {
	stored, ok := s.trades[item.ID]
	if !ok {
		return nil
	}
	cp := *item
	cp.Screenshots = append([]models.TradeScreenshot(nil), stored.Screenshots...)
	for _, shot := range item.Screenshots {
		if shot.ID == 0 {
			shot.ID = s.id()
			shot.TradeID = item.ID
			cp.Screenshots = append(cp.Screenshots, shot)
		}
	}
	cp.Tags = stored.Tags
	if tagNames != nil {
		cp.Tags = s.resolve(tagNames)
	}
	s.trades[item.ID] = &cp
	return nil
}

func (s *stubRepo) DeleteTrades(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	var n int64
	for _, id := range ids {
		if t, ok := s.trades[id]; ok && t.UserID == userID {
			delete(s.trades, id)
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) AddTagsToTrades(ctx context.Context, userID uint64, ids []uint64, tagNames []string) (int64, error) {
	var n int64
	tags := s.resolve(tagNames)
	for _, id := range ids {
		t, ok := s.trades[id]
		if !ok || t.UserID != userID {
			continue
		}
		have := map[uint64]bool{}
		for _, tag := range t.Tags {
			have[tag.ID] = true
		}
		for _, tag := range tags {
			if !have[tag.ID] {
				t.Tags = append(t.Tags, tag)
			}
		}
		n++
	}
	return n, nil
}

func (s *stubRepo) resolve(names []string) []models.Tag {
	var out []models.Tag
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, _ := s.GetTagByName(context.Background(), name)
		if tag == nil {
			tag = &models.Tag{ID: s.id(), Name: name}
			s.tags[tag.ID] = tag
		}
		out = append(out, *tag)
	}
	return out
}

func (s *stubRepo) GetScreenshotForUser(ctx context.Context, userID, id uint64) (*models.TradeScreenshot, error) {
	for _, t := range s.trades {
		if t.UserID != userID {
			continue
		}
		for _, shot := range t.Screenshots {
			if shot.ID == id {
				cp := shot
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (s *stubRepo) DeleteScreenshot(ctx context.Context, id uint64) error {
	for _, t := range s.trades {
		kept := t.Screenshots[:0]
		for _, shot := range t.Screenshots {
			if shot.ID != id {
				kept = append(kept, shot)
			}
		}
		t.Screenshots = kept
	}
	return nil
}

func (s *stubRepo) ListTagUsage(ctx context.Context, userID uint64) ([]models.TagUsage, error) {
	var out []models.TagUsage
	for _, tag := range s.tags {
		usage := models.TagUsage{Tag: *tag}
		for _, t := range s.owned(userID) {
			for _, tt := range t.Tags {
				if tt.ID == tag.ID {
					usage.TradesCount++
				}
			}
		}
		out = append(out, usage)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubRepo) GetTagByID(ctx context.Context, id uint64) (*models.Tag, error) {
	if tag, ok := s.tags[id]; ok {
		cp := *tag
		return &cp, nil
	}
	return nil, nil
}

func (s *stubRepo) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	for _, tag := range s.tags {
		if tag.Name == name {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) CreateTag(ctx context.Context, item *models.Tag) error {
	item.ID = s.id()
	cp := *item
	s.tags[item.ID] = &cp
	return nil
}

func (s *stubRepo) TagUsedByOtherUsers(ctx context.Context, tagID, userID uint64) (bool, error) {
	for _, t := range s.trades {
		if t.UserID == userID {
			continue
		}
		for _, tag := range t.Tags {
			if tag.ID == tagID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *stubRepo) DeleteTag(ctx context.Context, id uint64) error {
	delete(s.tags, id)
	for _, t := range s.trades {
		kept := t.Tags[:0]
		for _, tag := range t.Tags {
			if tag.ID != id {
				kept = append(kept, tag)
			}
		}
		t.Tags = kept
	}
	return nil
}

func (s *stubRepo) DeleteOrphanTags(ctx context.Context) (int64, error) {
	used := map[uint64]bool{}
	for _, t := range s.trades {
		for _, tag := range t.Tags {
			used[tag.ID] = true
		}
	}
	var n int64
	for id := range s.tags {
		if !used[id] {
			delete(s.tags, id)
			n++
		}
	}
	return n, nil
}
