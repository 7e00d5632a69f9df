// file: models/match.go
package models

import "time"

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
)

// MaxPostulations caps the applicant set of a single match.
const MaxPostulations = 5

// Match is the mutable, active record of a scheduled game. Finished or
// deleted matches do not linger here; they move wholesale into
// HistoryEntry via the archival sweep or an explicit organizer delete.
type Match struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"` // "X vs Y" convention
	OrganizerID uint32 `gorm:"not null;index" json:"organizer_id"`
	Organizer   *User  `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	VenueID     uint32 `gorm:"not null;index" json:"venue_id"`
	Venue       *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Location    string `gorm:"size:150" json:"location"`

	// MatchDate is stored canonically as YYYY-MM-DD; the two client-facing
	// formats are normalized at the API boundary.
	MatchDate string `gorm:"size:10;not null;index" json:"match_date"`
	MatchTime string `gorm:"size:5;not null" json:"match_time"` // HH:MM

	Status MatchStatus `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	RefereeID *uint32 `gorm:"index" json:"referee_id,omitempty"`
	Referee   *User   `gorm:"foreignKey:RefereeID" json:"referee,omitempty"`

	// PostulationCount mirrors len(Postulations); it exists so the cap can
	// be enforced with a single conditional UPDATE under concurrent applies.
	PostulationCount uint          `gorm:"not null;default:0" json:"postulation_count"`
	Postulations     []Postulation `gorm:"foreignKey:MatchID" json:"postulations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "refzone_match"
}
