package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tradejournal/internal/models"
)

type ScreenshotInput struct {
	FilePath string  `json:"file_path" validate:"required,notblank,max=512"`
	Caption  *string `json:"caption" validate:"omitempty,max=255"`
	Position int     `json:"position" validate:"gte=0"`
}

// TradeInput is the body of a trade create request.
type TradeInput struct {
	Symbol         string            `json:"symbol" validate:"required,notblank,max=32"`
	Session        string            `json:"session" validate:"required,notblank,max=32"`
	Strategy       string            `json:"strategy" validate:"max=64"`
	Type           string            `json:"type" validate:"required,oneof=Buy Sell"`
	Status         string            `json:"status" validate:"required,oneof=Open Closed"`
	EntryPrice     *decimal.Decimal  `json:"entry_price" validate:"required,gt=0"`
	ExitPrice      *decimal.Decimal  `json:"exit_price" validate:"omitempty,gt=0"`
	PnL            *decimal.Decimal  `json:"pnl" validate:"required"`
	PositionSize   *decimal.Decimal  `json:"position_size" validate:"required,gte=0"`
	RiskPercentage *decimal.Decimal  `json:"risk_percentage" validate:"required,gte=0,lte=100"`
	StopLoss       *decimal.Decimal  `json:"stop_loss" validate:"required,gte=0"`
	TakeProfit     *decimal.Decimal  `json:"take_profit" validate:"required,gte=0"`
	Notes          models.TradeNotes `json:"notes"`
	EntryTime      time.Time         `json:"entry_time" validate:"required"`
	ExitTime       *time.Time        `json:"exit_time"`
	Tags           []string          `json:"tags" validate:"max=20,dive,max=64"`
	Screenshots    []ScreenshotInput `json:"screenshots" validate:"max=20,dive"`
}

// TradePatch is the body of a trade update request. Absent fields keep their
// stored value; a present tags list replaces the trade's tags. Reopening a
// trade clears its exit price and exit time.
type TradePatch struct {
	Symbol         *string            `json:"symbol" validate:"omitempty,notblank,max=32"`
	Session        *string            `json:"session" validate:"omitempty,notblank,max=32"`
	Strategy       *string            `json:"strategy" validate:"omitempty,max=64"`
	Type           *string            `json:"type" validate:"omitempty,oneof=Buy Sell"`
	Status         *string            `json:"status" validate:"omitempty,oneof=Open Closed"`
	EntryPrice     *decimal.Decimal   `json:"entry_price" validate:"omitempty,gt=0"`
	ExitPrice      *decimal.Decimal   `json:"exit_price" validate:"omitempty,gt=0"`
	PnL            *decimal.Decimal   `json:"pnl"`
	PositionSize   *decimal.Decimal   `json:"position_size" validate:"omitempty,gte=0"`
	RiskPercentage *decimal.Decimal   `json:"risk_percentage" validate:"omitempty,gte=0,lte=100"`
	StopLoss       *decimal.Decimal   `json:"stop_loss" validate:"omitempty,gte=0"`
	TakeProfit     *decimal.Decimal   `json:"take_profit" validate:"omitempty,gte=0"`
	Notes          *models.TradeNotes `json:"notes"`
	EntryTime      *time.Time         `json:"entry_time"`
	ExitTime       *time.Time         `json:"exit_time"`
	Tags           []string           `json:"tags" validate:"omitempty,max=20,dive,max=64"`
	Screenshots    []ScreenshotInput  `json:"screenshots" validate:"omitempty,max=20,dive"`
}

func (in TradeInput) toModel(userID uint64) *models.Trade {
	item := &models.Trade{
		UserID:         userID,
		Symbol:         strings.TrimSpace(in.Symbol),
		Session:        strings.TrimSpace(in.Session),
		Strategy:       strings.TrimSpace(in.Strategy),
		Type:           in.Type,
		Status:         in.Status,
		EntryPrice:     *in.EntryPrice,
		ExitPrice:      in.ExitPrice,
		PnL:            *in.PnL,
		PositionSize:   *in.PositionSize,
		RiskPercentage: *in.RiskPercentage,
		StopLoss:       *in.StopLoss,
		TakeProfit:     *in.TakeProfit,
		Notes:          datatypes.NewJSONType(in.Notes),
		EntryTime:      in.EntryTime.UTC(),
		ExitTime:       utcPtr(in.ExitTime),
	}
	item.Screenshots = screenshotModels(in.Screenshots)
	return item
}

func (p TradePatch) apply(item *models.Trade) {
	setString(&item.Symbol, p.Symbol)
	setString(&item.Session, p.Session)
	setString(&item.Strategy, p.Strategy)
	setString(&item.Type, p.Type)
	setString(&item.Status, p.Status)
	setDecimal(&item.EntryPrice, p.EntryPrice)
	setDecimal(&item.PnL, p.PnL)
	setDecimal(&item.PositionSize, p.PositionSize)
	setDecimal(&item.RiskPercentage, p.RiskPercentage)
	setDecimal(&item.StopLoss, p.StopLoss)
	setDecimal(&item.TakeProfit, p.TakeProfit)
	if p.ExitPrice != nil {
		item.ExitPrice = p.ExitPrice
	}
	if p.Notes != nil {
		item.Notes = datatypes.NewJSONType(*p.Notes)
	}
	if p.EntryTime != nil {
		item.EntryTime = p.EntryTime.UTC()
	}
	if p.ExitTime != nil {
		item.ExitTime = utcPtr(p.ExitTime)
	}
	if p.Status != nil && item.Status == models.TradeStatusOpen {
		item.ExitPrice = nil
		item.ExitTime = nil
	}
	item.Screenshots = screenshotModels(p.Screenshots)
}

// reopensWithExit reports a patch that reopens a trade while also setting exit fields.
func (p TradePatch) reopensWithExit() bool {
	return p.Status != nil && strings.TrimSpace(*p.Status) == models.TradeStatusOpen &&
		(p.ExitPrice != nil || p.ExitTime != nil)
}

// checkTimes rejects a trade that exits before it was entered.
func checkTimes(item *models.Trade) error {
	if item.ExitTime != nil && item.ExitTime.Before(item.EntryTime) {
		return invalidf("exit_time is before entry_time")
	}
	return nil
}

func screenshotModels(in []ScreenshotInput) []models.TradeScreenshot {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.TradeScreenshot, 0, len(in))
	for _, s := range in {
		out = append(out, models.TradeScreenshot{
			FilePath: strings.TrimSpace(s.FilePath),
			Caption:  s.Caption,
			Position: s.Position,
		})
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UTC()
	return &v
}
