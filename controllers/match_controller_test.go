// file: controllers/match_controller_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
	"github.com/Th3Mauryy/RefZone-sub000/routes"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

var testDBSeq int64

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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
		&models.User{}, &models.Venue{}, &models.Match{},
		&models.Postulation{}, &models.HistoryEntry{}, &models.Rating{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })

	return routes.SetupRouter()
}

func seedUserWithToken(t *testing.T, username string, role models.UserRole) (*models.User, string) {
	t.Helper()
	u := &models.User{
		Username: username,
		Password: "secret-password",
		Email:    username + "@example.com",
		Role:     role,
	}
	if err := database.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := utils.GenerateToken(*u)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return u, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestMatchEndpoints_AuthAndRoles(t *testing.T) {
	r := setupTest(t)
	_, refToken := seedUserWithToken(t, "ref1", models.RoleReferee)

	if w := doJSON(t, r, http.MethodGet, "/api/v1/matches", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", w.Code)
	}
	// referees cannot create matches
	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", refToken, gin.H{
		"name": "A vs B", "date": "2030-01-01", "time": "12:00", "venue_id": 1,
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("referee create: status %d, want 403", w.Code)
	}
}

func TestCreateAndApplyFlow(t *testing.T) {
	r := setupTest(t)
	organizer, orgToken := seedUserWithToken(t, "org1", models.RoleOrganizer)
	_, refToken := seedUserWithToken(t, "ref1", models.RoleReferee)
	venue := &models.Venue{Name: "La Cancha", OwnerID: organizer.ID}
	if err := database.DB.Create(venue).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}

	start := time.Now().Add(3 * time.Hour)
	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", orgToken, gin.H{
		"name":     "Team A vs Team B",
		"date":     start.Format("02/01/2006"), // latin form is accepted at the boundary
		"time":     start.Format("15:04"),
		"venue_id": venue.ID,
		"location": "Cancha 2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["match_date"] != start.Format("2006-01-02") {
		t.Fatalf("date not canonicalized: %v", data["match_date"])
	}
	matchID := int(data["id"].(float64))

	applyPath := fmt.Sprintf("/api/v1/matches/%d/apply", matchID)
	if w := doJSON(t, r, http.MethodPost, applyPath, refToken, nil); w.Code != http.StatusOK {
		t.Fatalf("apply: status %d body %s", w.Code, w.Body.String())
	}

	// the duplicate carries its machine-readable reason
	w = doJSON(t, r, http.MethodPost, applyPath, refToken, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second apply: status %d, want 409", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "already_postulated" {
		t.Fatalf("second apply error = %v", body["error"])
	}
}

func TestCreateMatch_LeadTimeErrorEnvelope(t *testing.T) {
	r := setupTest(t)
	organizer, orgToken := seedUserWithToken(t, "org1", models.RoleOrganizer)
	venue := &models.Venue{Name: "La Cancha", OwnerID: organizer.ID}
	if err := database.DB.Create(venue).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}

	start := time.Now().Add(1 * time.Hour)
	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", orgToken, gin.H{
		"name":     "Team A vs Team B",
		"date":     start.Format("2006-01-02"),
		"time":     start.Format("15:04"),
		"venue_id": venue.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "lead_time_violation" {
		t.Fatalf("error = %v, want lead_time_violation", body["error"])
	}
	if body["message"] == nil || body["message"] == "" {
		t.Fatal("error body carries no message")
	}
}
