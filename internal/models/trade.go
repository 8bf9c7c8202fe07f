package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	TradeTypeBuy  = "Buy"
	TradeTypeSell = "Sell"

	TradeStatusOpen   = "Open"
	TradeStatusClosed = "Closed"
)

// TradeNotes holds the free-form journal narrative for one trade.
type TradeNotes struct {
	Entry          string `json:"entry,omitempty"`
	Management     string `json:"management,omitempty"`
	Exit           string `json:"exit,omitempty"`
	LessonsLearned string `json:"lessons_learned,omitempty"`
}

// Trade is one discretionary position logged by a user.
type Trade struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint64 `gorm:"not null;index:idx_trades_user_entry,priority:1" json:"user_id"`

	Symbol   string `gorm:"type:varchar(32);not null;index" json:"symbol"`
	Session  string `gorm:"type:varchar(32);not null" json:"session"`
	Strategy string `gorm:"type:varchar(64);not null;default:''" json:"strategy"`
	Type     string `gorm:"type:varchar(8);not null" json:"type"`
	Status   string `gorm:"type:varchar(8);not null;index" json:"status"`

	EntryPrice decimal.Decimal  `gorm:"type:numeric(20,8);not null" json:"entry_price"`
	ExitPrice  *decimal.Decimal `gorm:"type:numeric(20,8)" json:"exit_price,omitempty"`
	// Explicit column name because default GORM naming turns "PnL" into "pn_l".
	PnL            decimal.Decimal `gorm:"column:pnl;type:numeric(20,2);not null;default:0" json:"pnl"`
	PositionSize   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"position_size"`
	RiskPercentage decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0" json:"risk_percentage"`
	StopLoss       decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0" json:"stop_loss"`
	TakeProfit     decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0" json:"take_profit"`

	Notes datatypes.JSONType[TradeNotes] `json:"notes"`

	EntryTime time.Time  `gorm:"not null;index:idx_trades_user_entry,priority:2" json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`

	Tags        []Tag             `gorm:"many2many:trade_tags;" json:"tags"`
	Screenshots []TradeScreenshot `gorm:"constraint:OnDelete:CASCADE;" json:"screenshots"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// IsWin reports whether the trade realized a strictly positive P&L.
func (t Trade) IsWin() bool {
	return t.PnL.IsPositive()
}
