// file: services/match_service.go
package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

// Concurrency note: none of these operations hold locks across I/O.
// Every conflicting pair of mutations (two assigns, apply vs assign,
// apply past the cap) is decided by a conditional UPDATE whose WHERE
// clause restates the precondition, checked via RowsAffected. The loser
// of a race sees zero rows touched and its transaction rolls back, which
// stays correct across multiple process instances.

type CreateMatchInput struct {
	Name     string
	Location string
	Date     string
	Time     string
	VenueID  uint32
}

// CreateMatch validates the creation guards (date format, past date, lead
// time, same-day team-name collision) and persists the match.
func CreateMatch(organizerID uint32, in CreateMatchInput, now time.Time) (*models.Match, error) {
	date, err := ParseMatchDate(in.Date)
	if err != nil {
		return nil, err
	}
	tm, err := ParseMatchTime(in.Time)
	if err != nil {
		return nil, err
	}
	start, _ := StartInstant(date, tm)
	if start.Before(now) {
		return nil, ErrPastDate
	}
	if start.Before(now.Add(CreationLeadTime)) {
		return nil, ErrLeadTime
	}

	var venue models.Venue
	if err := database.DB.First(&venue, in.VenueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if venue.OwnerID != organizerID {
		return nil, ErrForbidden
	}

	var sameDay []models.Match
	if err := database.DB.Where("organizer_id = ? AND match_date = ?", organizerID, date).Find(&sameDay).Error; err != nil {
		return nil, err
	}
	newTokens := teamTokens(in.Name)
	for i := range sameDay {
		for tok := range teamTokens(sameDay[i].Name) {
			if newTokens[tok] {
				return nil, ErrDuplicateTeamName
			}
		}
	}

	m := &models.Match{
		Name:        strings.TrimSpace(in.Name),
		OrganizerID: organizerID,
		VenueID:     in.VenueID,
		Location:    in.Location,
		MatchDate:   date,
		MatchTime:   tm,
		Status:      models.MatchScheduled,
	}
	if err := database.DB.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

var vsSplit = regexp.MustCompile(`(?i)\s+vs\.?\s+`)

// teamTokens splits an "X vs Y" match name into its normalized team
// names: lowercased, inner whitespace collapsed.
func teamTokens(name string) map[string]bool {
	out := make(map[string]bool)
	for _, part := range vsSplit.Split(name, -1) {
		part = strings.Join(strings.Fields(strings.ToLower(part)), " ")
		if part != "" {
			out[part] = true
		}
	}
	return out
}

type UpdateMatchInput struct {
	Name     string
	Location string
	Date     string
	Time     string
}

// UpdateMatch edits schedule fields. Rejected once the match has started;
// the check runs fresh on every call, never cached. Only the edited
// columns are written, and only while the schedule still matches the one
// the not-started check was computed from, so a concurrent apply or
// assign can never be clobbered by a stale snapshot.
func UpdateMatch(organizerID, matchID uint32, in UpdateMatchInput, now time.Time) (*models.Match, error) {
	m, err := findMatch(matchID)
	if err != nil {
		return nil, err
	}
	if m.OrganizerID != organizerID {
		return nil, ErrForbidden
	}
	if HasStarted(m, now) {
		return nil, ErrMatchAlreadyStarted
	}

	name, location := m.Name, m.Location
	date, tm := m.MatchDate, m.MatchTime
	if in.Date != "" {
		if date, err = ParseMatchDate(in.Date); err != nil {
			return nil, err
		}
	}
	if in.Time != "" {
		if tm, err = ParseMatchTime(in.Time); err != nil {
			return nil, err
		}
	}
	if start, ok := StartInstant(date, tm); !ok || start.Before(now) {
		return nil, ErrPastDate
	}
	if in.Name != "" {
		name = strings.TrimSpace(in.Name)
	}
	if in.Location != "" {
		location = in.Location
	}

	res := database.DB.Model(&models.Match{}).
		Where("id = ? AND match_date = ? AND match_time = ?", matchID, m.MatchDate, m.MatchTime).
		Updates(map[string]interface{}{
			"name":       name,
			"location":   location,
			"match_date": date,
			"match_time": tm,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		cur, err := findMatch(matchID)
		if err != nil {
			return nil, err
		}
		if HasStarted(cur, now) {
			return nil, ErrMatchAlreadyStarted
		}
		return nil, ErrEditConflict
	}
	return findMatch(matchID)
}

// Apply records a referee's postulation. The cap lives in the WHERE of
// the count bump, so N simultaneous applies on a full match cannot all
// slip through; the unique (match, referee) index catches a racing
// duplicate and rolls the bump back with it.
func Apply(matchID, refereeID uint32, now time.Time) error {
	m, err := findMatch(matchID)
	if err != nil {
		return err
	}
	if HasStarted(m, now) {
		return ErrMatchAlreadyStarted
	}
	if m.RefereeID != nil {
		return ErrRefereeAlreadyAssigned
	}

	var existing int64
	if err := database.DB.Model(&models.Postulation{}).
		Where("match_id = ? AND referee_id = ?", matchID, refereeID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrAlreadyPostulated
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Match{}).
			Where("id = ? AND referee_id IS NULL AND postulation_count < ?", matchID, models.MaxPostulations).
			Update("postulation_count", gorm.Expr("postulation_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// the guard clause failed, re-read to report the real reason
			var cur models.Match
			if err := tx.First(&cur, matchID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMatchNotFound
				}
				return err
			}
			if cur.RefereeID != nil {
				return ErrRefereeAlreadyAssigned
			}
			return ErrPostulationCapReached
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Postulation{MatchID: matchID, RefereeID: refereeID})
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			// lost a race against an identical apply; undo the bump
			return ErrAlreadyPostulated
		}
		return nil
	})
}

// AssignReferee promotes a postulant to assigned referee. Removing the
// postulation and setting the referee commit together, so no reader ever
// sees the referee both assigned and still in the applicant set. Of two
// concurrent assigns, exactly one finds referee_id still NULL.
func AssignReferee(organizerID, matchID, refereeID uint32, now time.Time) error {
	m, err := findMatch(matchID)
	if err != nil {
		return err
	}
	if m.OrganizerID != organizerID {
		return ErrForbidden
	}
	if HasStarted(m, now) {
		return ErrMatchAlreadyStarted
	}
	if m.RefereeID != nil {
		return ErrRefereeAlreadyAssigned
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("match_id = ? AND referee_id = ?", matchID, refereeID).
			Delete(&models.Postulation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPostulated
		}

		upd := tx.Model(&models.Match{}).
			Where("id = ? AND referee_id IS NULL", matchID).
			Updates(map[string]interface{}{
				"referee_id":        refereeID,
				"postulation_count": gorm.Expr("postulation_count - 1"),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrRefereeAlreadyAssigned
		}
		return nil
	})
	if err != nil {
		return err
	}
	if m, err := GetMatch(matchID); err == nil {
		notify(EventRefereeAssigned, m, refereeID)
	}
	return nil
}

// SubstituteReferee swaps the assigned referee for one of the postulants.
// The outgoing referee re-enters the applicant set so they stay eligible
// for other postulation flows.
func SubstituteReferee(organizerID, matchID, newRefereeID uint32, now time.Time) error {
	m, err := findMatch(matchID)
	if err != nil {
		return err
	}
	if m.OrganizerID != organizerID {
		return ErrForbidden
	}
	if HasStarted(m, now) {
		return ErrMatchAlreadyStarted
	}
	if m.RefereeID == nil {
		return ErrNoRefereeAssigned
	}
	oldRefereeID := *m.RefereeID

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("match_id = ? AND referee_id = ?", matchID, newRefereeID).
			Delete(&models.Postulation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPostulated
		}

		// Unique index makes the re-add a no-op if the old referee is
		// somehow already listed.
		back := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Postulation{MatchID: matchID, RefereeID: oldRefereeID})
		if back.Error != nil {
			return back.Error
		}
		delta := back.RowsAffected - 1 // -1 removed, +RowsAffected re-added

		upd := tx.Model(&models.Match{}).
			Where("id = ? AND referee_id = ?", matchID, oldRefereeID).
			Updates(map[string]interface{}{
				"referee_id":        newRefereeID,
				"postulation_count": gorm.Expr("postulation_count + ?", delta),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// the assignment changed underneath us
			return ErrNoRefereeAssigned
		}
		return nil
	})
	if err != nil {
		return err
	}
	if m, err := GetMatch(matchID); err == nil {
		notify(EventRefereeSubstituted, m, newRefereeID, oldRefereeID)
	}
	return nil
}

// UnassignReferee clears the assignment and returns the referee to the
// applicant set, reopening the match for postulation.
func UnassignReferee(organizerID, matchID uint32, now time.Time) error {
	m, err := findMatch(matchID)
	if err != nil {
		return err
	}
	if m.OrganizerID != organizerID {
		return ErrForbidden
	}
	if HasStarted(m, now) {
		return ErrMatchAlreadyStarted
	}
	if m.RefereeID == nil {
		return ErrNoRefereeAssigned
	}
	oldRefereeID := *m.RefereeID

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		back := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Postulation{MatchID: matchID, RefereeID: oldRefereeID})
		if back.Error != nil {
			return back.Error
		}

		upd := tx.Model(&models.Match{}).
			Where("id = ? AND referee_id = ?", matchID, oldRefereeID).
			Updates(map[string]interface{}{
				"referee_id":        nil,
				"postulation_count": gorm.Expr("postulation_count + ?", back.RowsAffected),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrNoRefereeAssigned
		}
		return nil
	})
	if err != nil {
		return err
	}
	if m, err := GetMatch(matchID); err == nil {
		notify(EventRefereeUnassigned, m, oldRefereeID)
	}
	return nil
}

// DeleteMatch is the manual-removal path: the match moves into history as
// Cancelled/manual before the live row disappears, in one transaction.
func DeleteMatch(organizerID, matchID uint32, now time.Time) error {
	var snapshot models.Match
	err := database.DB.Preload("Referee").Preload("Venue").Preload("Postulations").
		First(&snapshot, matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	if snapshot.OrganizerID != organizerID {
		return ErrForbidden
	}
	if HasStarted(&snapshot, now) {
		return ErrMatchAlreadyStarted
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return archiveInTx(tx, &snapshot, models.HistoryCancelled, models.ArchiveManual, now)
	})
	if err != nil {
		return err
	}
	notify(EventMatchCancelled, &snapshot, matchRecipients(&snapshot)...)
	return nil
}

// GetMatch loads one match with its referee, venue and applicants.
func GetMatch(matchID uint32) (*models.Match, error) {
	var m models.Match
	err := database.DB.Preload("Referee").Preload("Venue").
		Preload("Postulations").Preload("Postulations.Referee").
		First(&m, matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListMatches returns all active matches, soonest first.
func ListMatches() ([]models.Match, error) {
	var out []models.Match
	err := database.DB.Preload("Referee").Preload("Venue").
		Order("match_date, match_time, id").Find(&out).Error
	return out, err
}

func findMatch(matchID uint32) (*models.Match, error) {
	var m models.Match
	if err := database.DB.First(&m, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

// matchRecipients gathers everyone with a stake in the match: assigned
// referee plus all applicants. Must be called before the match row is
// deleted.
func matchRecipients(m *models.Match) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	if m.RefereeID != nil {
		seen[*m.RefereeID] = true
		out = append(out, *m.RefereeID)
	}
	for _, p := range m.Postulations {
		if !seen[p.RefereeID] {
			seen[p.RefereeID] = true
			out = append(out, p.RefereeID)
		}
	}
	return out
}
