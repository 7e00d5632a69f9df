// file: models/rating.go
package models

import "time"

// Rating is one organizer's one-time score for a referee's performance on
// one archived match. The composite unique index enforces the at-most-one
// rating per (referee, history entry) invariant at the storage layer.
type Rating struct {
	ID             uint32    `gorm:"primarykey" json:"id"`
	RefereeID      uint32    `gorm:"not null;uniqueIndex:idx_referee_entry" json:"referee_id"`
	HistoryEntryID uint32    `gorm:"not null;uniqueIndex:idx_referee_entry" json:"history_entry_id"`
	OrganizerID    uint32    `gorm:"not null;index" json:"organizer_id"`
	Stars          int       `gorm:"not null" json:"stars"`
	Comment        string    `gorm:"size:500" json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Rating) TableName() string {
	return "refzone_rating"
}
