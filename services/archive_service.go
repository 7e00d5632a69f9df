// file: services/archive_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

// RunSweep scans every active match against a single shared now, archives
// the finished ones as Finalized/automatic and queues notifications for
// the people who were attached to each match. One failing match is logged
// and skipped; it stays active and is retried on the next tick. Returns
// how many matches were archived.
func RunSweep(now time.Time) int {
	var matches []models.Match
	if err := database.DB.Preload("Referee").Preload("Venue").Preload("Postulations").
		Find(&matches).Error; err != nil {
		log.Printf("sweep: loading active matches: %v", err)
		return 0
	}

	archived := 0
	for i := range matches {
		m := &matches[i]
		if !HasFinished(m, now) {
			continue
		}
		// Recipients must be gathered now; after archival the match row
		// is gone and only the denormalized history fields remain.
		recipients := matchRecipients(m)
		if err := archiveMatch(m, now); err != nil {
			log.Printf("sweep: archiving match %d: %v", m.ID, err)
			continue
		}
		archived++
		notify(EventMatchFinalized, m, recipients...)
	}
	return archived
}

// StartSweep runs one sweep immediately, then one per interval until the
// context is cancelled.
func StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		log.Printf("Starting archival sweep every %s", interval)
		if n := RunSweep(time.Now()); n > 0 {
			log.Printf("sweep: archived %d matches", n)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := RunSweep(time.Now()); n > 0 {
					log.Printf("sweep: archived %d matches", n)
				}
			}
		}
	}()
}

func archiveMatch(m *models.Match, now time.Time) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return archiveInTx(tx, m, models.HistoryFinalized, models.ArchiveAutomatic, now)
	})
}

// archiveInTx performs the single logical transition from active match to
// history entry: insert the entry, remove the postulations, delete the
// match. The unique index on match_id rejects a second archival of the
// same match, and a zero-row delete rolls the whole transition back, so
// the commit point is the match deletion and the outcome is all-or-nothing.
func archiveInTx(tx *gorm.DB, m *models.Match, state models.HistoryState, reason models.ArchiveReason, now time.Time) error {
	entry := buildHistoryEntry(m, state, reason, now)
	if err := tx.Create(entry).Error; err != nil {
		return err
	}
	if err := tx.Where("match_id = ?", m.ID).Delete(&models.Postulation{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&models.Match{}, m.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("match %d disappeared before archival", m.ID)
	}
	return nil
}

func buildHistoryEntry(m *models.Match, state models.HistoryState, reason models.ArchiveReason, now time.Time) *models.HistoryEntry {
	entry := &models.HistoryEntry{
		Reference:   uuid.NewString(),
		MatchID:     m.ID,
		OrganizerID: m.OrganizerID,
		VenueID:     m.VenueID,
		RefereeID:   m.RefereeID,
		MatchName:   m.Name,
		MatchDate:   m.MatchDate,
		MatchTime:   m.MatchTime,
		Location:    m.Location,
		State:       state,
		Reason:      reason,
		ArchivedAt:  now,
	}
	if m.Venue != nil {
		entry.VenueName = m.Venue.Name
	}
	if m.Referee != nil {
		entry.RefereeName = m.Referee.Username
	}
	if t, err := time.Parse(canonicalDateLayout, m.MatchDate); err == nil {
		entry.Month = int(t.Month())
		entry.Year = t.Year()
	}
	return entry
}

// ListHistory returns an organizer's archived matches, optionally scoped
// to a month/year reporting window (zero means no filter).
func ListHistory(organizerID uint32, month, year int) ([]models.HistoryEntry, error) {
	q := database.DB.Where("organizer_id = ?", organizerID)
	if month > 0 {
		q = q.Where("month = ?", month)
	}
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	var out []models.HistoryEntry
	err := q.Order("archived_at desc").Find(&out).Error
	return out, err
}
