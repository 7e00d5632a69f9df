// file: models/history_entry.go
package models

import "time"

type HistoryState string
type ArchiveReason string

const (
	HistoryFinalized HistoryState = "Finalized"
	HistoryCancelled HistoryState = "Cancelled"

	ArchiveAutomatic ArchiveReason = "automatic"
	ArchiveManual    ArchiveReason = "manual"
)

// HistoryEntry is the immutable, append-only record of a match's terminal
// outcome. Every field the live Match carried that reports or ratings may
// need later is denormalized here, because the Match row is gone by the
// time anyone reads this. The only mutation ever applied after insert is
// the one-time Rated flip.
type HistoryEntry struct {
	ID        uint32 `gorm:"primarykey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	// MatchID is unique: the second attempt to archive the same match
	// fails on insert, which is the double-archival guard.
	MatchID uint32 `gorm:"not null;uniqueIndex" json:"match_id"`

	OrganizerID uint32  `gorm:"not null;index" json:"organizer_id"`
	VenueID     uint32  `gorm:"not null;index" json:"venue_id"`
	VenueName   string  `gorm:"size:100" json:"venue_name"`
	RefereeID   *uint32 `gorm:"index" json:"referee_id,omitempty"`
	RefereeName string  `gorm:"size:50" json:"referee_name,omitempty"`

	MatchName string `gorm:"size:100;not null" json:"match_name"`
	MatchDate string `gorm:"size:10;not null" json:"match_date"`
	MatchTime string `gorm:"size:5;not null" json:"match_time"`
	Location  string `gorm:"size:150" json:"location"`

	// Month/Year come from the match date, for reporting windows.
	Month int `gorm:"not null;index" json:"month"`
	Year  int `gorm:"not null;index" json:"year"`

	State  HistoryState  `gorm:"size:20;not null" json:"state"`
	Reason ArchiveReason `gorm:"size:20;not null" json:"reason"`

	Rated bool `gorm:"column:calificado;not null;default:false" json:"calificado"`

	ArchivedAt time.Time `json:"archived_at"`
}

func (HistoryEntry) TableName() string {
	return "refzone_history_entry"
}

// RatingEligible reports whether this entry can ever receive a rating:
// only finalized matches that actually had a referee qualify.
func (h *HistoryEntry) RatingEligible() bool {
	return h.State == HistoryFinalized && h.RefereeID != nil && !h.Rated
}
