// file: models/postulation.go
package models

import "time"

// Postulation is one referee's application to one match. The composite
// unique index gives the applicant set its set semantics at the storage
// layer, independent of application code.
type Postulation struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	MatchID   uint32    `gorm:"not null;uniqueIndex:idx_match_referee" json:"match_id"`
	RefereeID uint32    `gorm:"not null;uniqueIndex:idx_match_referee" json:"referee_id"`
	Referee   *User     `gorm:"foreignKey:RefereeID" json:"referee,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Postulation) TableName() string {
	return "refzone_postulation"
}
