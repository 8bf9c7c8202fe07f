package models

import "time"

// Tag is a label shared by every user; trades reference it through trade_tags.
type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagUsage is a tag with the number of the requesting user's trades using it.
type TagUsage struct {
	Tag
	TradesCount int64 `json:"trades_count"`
}
