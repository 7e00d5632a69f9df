// file: services/testutil_test.go
package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

var testDBSeq int64

// setupTestDB points database.DB at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.Match{},
		&models.Postulation{},
		&models.HistoryEntry{},
		&models.Rating{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	database.DB = db
	SetNotifier(LogNotifier{})
	t.Cleanup(func() { sqlDB.Close() })
}

// captureNotifier records events instead of delivering them.
type captureNotifier struct {
	events []NotificationEvent
}

func (n *captureNotifier) Send(e NotificationEvent) error {
	n.events = append(n.events, e)
	return nil
}

func seedUser(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Password: "secret-password",
		Email:    username + "@example.com",
		Role:     role,
	}
	if err := database.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func seedOrganizerWithVenue(t *testing.T, username string) (*models.User, *models.Venue) {
	t.Helper()
	u := seedUser(t, username, models.RoleOrganizer)
	v := &models.Venue{Name: username + "'s field", OwnerID: u.ID}
	if err := database.DB.Create(v).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	return u, v
}

// seedMatch inserts a match row directly, bypassing the creation guards,
// so tests can place matches in the past.
func seedMatch(t *testing.T, organizer *models.User, venue *models.Venue, name string, start time.Time) *models.Match {
	t.Helper()
	m := &models.Match{
		Name:        name,
		OrganizerID: organizer.ID,
		VenueID:     venue.ID,
		Location:    "Cancha 1",
		MatchDate:   start.Format("2006-01-02"),
		MatchTime:   start.Format("15:04"),
		Status:      models.MatchScheduled,
	}
	if err := database.DB.Create(m).Error; err != nil {
		t.Fatalf("seed match %s: %v", name, err)
	}
	return m
}

func mustApply(t *testing.T, m *models.Match, referee *models.User, now time.Time) {
	t.Helper()
	if err := Apply(m.ID, referee.ID, now); err != nil {
		t.Fatalf("apply referee %d to match %d: %v", referee.ID, m.ID, err)
	}
}

func reloadMatch(t *testing.T, id uint32) *models.Match {
	t.Helper()
	var m models.Match
	if err := database.DB.Preload("Postulations").First(&m, id).Error; err != nil {
		t.Fatalf("reload match %d: %v", id, err)
	}
	return &m
}

func postulantIDs(m *models.Match) map[uint32]bool {
	out := make(map[uint32]bool)
	for _, p := range m.Postulations {
		out[p.RefereeID] = true
	}
	return out
}
