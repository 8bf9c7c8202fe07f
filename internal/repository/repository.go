package repository

import (
	"context"
	"errors"
	"time"

	"tradejournal/internal/models"
)

// ErrConflict reports a write rejected by a uniqueness constraint.
var ErrConflict = errors.New("conflicting record")

// Repository is the persistence surface of the journal. Every trade query is
// scoped by user id; lookups that miss return (nil, nil).
type Repository interface {
	TradeRepository
	ScreenshotRepository
	TagRepository
}

type TradeRepository interface {
	// ListTradesForUser returns every matching trade, newest entry first,
	// with tags preloaded. It is the single fetch behind the analytics views.
	ListTradesForUser(ctx context.Context, userID uint64, filter TradeFilter) ([]models.Trade, error)
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	GetTradeForUser(ctx context.Context, userID, id uint64) (*models.Trade, error)
	// CreateTrade inserts the trade with its screenshots and links tagNames,
	// creating missing tags.
	CreateTrade(ctx context.Context, item *models.Trade, tagNames []string) error
	// UpdateTrade saves scalar fields and appends screenshots without an id.
	// A nil tagNames leaves tags untouched; a non-nil one replaces them.
	UpdateTrade(ctx context.Context, item *models.Trade, tagNames []string) error
	// DeleteTrades removes the listed trades owned by userID and reports how many went.
	DeleteTrades(ctx context.Context, userID uint64, ids []uint64) (int64, error)
	// AddTagsToTrades links tagNames to the listed trades owned by userID and
	// reports how many trades were tagged.
	AddTagsToTrades(ctx context.Context, userID uint64, ids []uint64, tagNames []string) (int64, error)
}

type ScreenshotRepository interface {
	GetScreenshotForUser(ctx context.Context, userID, id uint64) (*models.TradeScreenshot, error)
	DeleteScreenshot(ctx context.Context, id uint64) error
}

type TagRepository interface {
	ListTagUsage(ctx context.Context, userID uint64) ([]models.TagUsage, error)
	GetTagByID(ctx context.Context, id uint64) (*models.Tag, error)
	GetTagByName(ctx context.Context, name string) (*models.Tag, error)
	// CreateTag fails with ErrConflict when the name is taken.
	CreateTag(ctx context.Context, item *models.Tag) error
	// TagUsedByOtherUsers reports whether any trade not owned by userID carries the tag.
	TagUsedByOtherUsers(ctx context.Context, tagID, userID uint64) (bool, error)
	DeleteTag(ctx context.Context, id uint64) error
	// DeleteOrphanTags removes tags no trade references.
	DeleteOrphanTags(ctx context.Context) (int64, error)
}

// TradeFilter narrows a user's trades. DateFrom is inclusive, DateTo exclusive.
type TradeFilter struct {
	Symbol   *string
	Session  *string
	Status   *string
	Strategy *string
	DateFrom *time.Time
	DateTo   *time.Time
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// NormalizeLimit maps a requested page size onto the one stores apply:
// non-positive means DefaultListLimit, anything above MaxListLimit is capped.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

type ListTradesParams struct {
	UserID  uint64
	Filter  TradeFilter
	Limit   int
	Offset  int
	OrderBy string
	Asc     *bool
}
