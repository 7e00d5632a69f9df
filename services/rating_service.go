// file: services/rating_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

type RateInput struct {
	HistoryEntryID uint32
	RefereeID      uint32
	Stars          int
	Comment        string
}

// RateReferee records the one-time rating for a finalized match. Insert,
// aggregate recompute and the calificado flip commit together; no reader
// can see one without the others.
func RateReferee(organizerID uint32, in RateInput) (*models.Rating, error) {
	if in.Stars < 1 || in.Stars > 5 {
		return nil, ErrInvalidStars
	}

	var rating *models.Rating
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.HistoryEntry
		err := tx.First(&entry, in.HistoryEntryID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHistoryNotFound
			}
			return err
		}
		if entry.OrganizerID != organizerID {
			return ErrForbidden
		}
		if entry.State != models.HistoryFinalized {
			return ErrMatchNotFinalized
		}
		if entry.Rated {
			return ErrAlreadyRated
		}
		if entry.RefereeID == nil || *entry.RefereeID != in.RefereeID {
			return ErrRefereeMismatch
		}

		var existing int64
		if err := tx.Model(&models.Rating{}).
			Where("referee_id = ? AND history_entry_id = ?", in.RefereeID, in.HistoryEntryID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRated
		}

		rating = &models.Rating{
			RefereeID:      in.RefereeID,
			HistoryEntryID: in.HistoryEntryID,
			OrganizerID:    organizerID,
			Stars:          in.Stars,
			Comment:        in.Comment,
		}
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		// Aggregates are always derived from the full rating set, never
		// incremented in place.
		var agg struct {
			Avg float64
			Cnt int64
		}
		if err := tx.Model(&models.Rating{}).
			Select("AVG(stars) as avg, COUNT(*) as cnt").
			Where("referee_id = ?", in.RefereeID).
			Scan(&agg).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", in.RefereeID).Updates(map[string]interface{}{
			"rating_average": agg.Avg,
			"rating_count":   agg.Cnt,
		}).Error; err != nil {
			return err
		}

		res := tx.Model(&models.HistoryEntry{}).
			Where("id = ? AND calificado = ?", entry.ID, false).
			Update("calificado", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyRated
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// PendingRatings lists the finalized, referee-assigned, not-yet-rated
// history entries whose venue belongs to the organizer.
func PendingRatings(organizerID uint32) ([]models.HistoryEntry, error) {
	var out []models.HistoryEntry
	err := database.DB.
		Joins("JOIN refzone_venue v ON v.id = refzone_history_entry.venue_id").
		Where("v.owner_id = ?", organizerID).
		Where("refzone_history_entry.state = ?", models.HistoryFinalized).
		Where("refzone_history_entry.calificado = ?", false).
		Where("refzone_history_entry.referee_id IS NOT NULL").
		Order("refzone_history_entry.archived_at desc").
		Find(&out).Error
	return out, err
}

// RefereeRatings returns a referee's full rating history, newest first.
func RefereeRatings(refereeID uint32) ([]models.Rating, error) {
	var out []models.Rating
	err := database.DB.Where("referee_id = ?", refereeID).
		Order("created_at desc").Find(&out).Error
	return out, err
}
