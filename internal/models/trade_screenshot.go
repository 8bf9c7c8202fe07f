package models

import "time"

// TradeScreenshot points at an image stored outside this service.
type TradeScreenshot struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TradeID   uint64    `gorm:"not null;index" json:"trade_id"`
	FilePath  string    `gorm:"type:varchar(512);not null" json:"file_path"`
	Caption   *string   `gorm:"type:varchar(255)" json:"caption,omitempty"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TradeScreenshot) TableName() string {
	return "trade_screenshots"
}
