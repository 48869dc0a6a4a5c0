package model

import "time"

// SeenNotification records an admitted dedup key when the database-backed
// dedup store is enabled. The unique index on Key is what makes the
// check-and-insert atomic across instances.
type SeenNotification struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Key       string `gorm:"size:512;uniqueIndex;not null" json:"key"`
	Channel   string `gorm:"size:32;index" json:"channel"`
	CreatedAt time.Time
}

func (SeenNotification) TableName() string {
	return "seen_notifications"
}
