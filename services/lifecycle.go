// file: services/lifecycle.go
package services

import (
	"strings"
	"time"

	"github.com/Th3Mauryy/RefZone-sub000/models"
)

const (
	canonicalDateLayout = "2006-01-02" // stored form
	latinDateLayout     = "02/01/2006" // accepted at the boundary
	timeLayout          = "15:04"

	// GracePeriod is how long after kickoff a match keeps counting as
	// "started"; once it elapses the match is finished and sweepable.
	GracePeriod = 60 * time.Minute

	// CreationLeadTime is the minimum gap between creating a match and
	// its start.
	CreationLeadTime = 2 * time.Hour
)

// ParseMatchDate normalizes a client-supplied date into the canonical
// YYYY-MM-DD form. Exactly two encodings are accepted, disambiguated by
// the separator: DD/MM/YYYY and YYYY-MM-DD. Anything else is a hard
// validation failure, so stored rows are always canonical.
func ParseMatchDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var layout string
	switch {
	case strings.Contains(raw, "/"):
		layout = latinDateLayout
	case strings.Contains(raw, "-"):
		layout = canonicalDateLayout
	default:
		return "", ErrInvalidDate
	}
	t, err := time.ParseInLocation(layout, raw, time.Local)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(canonicalDateLayout), nil
}

// ParseMatchTime validates the HH:MM form.
func ParseMatchTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(timeLayout), nil
}

// StartInstant resolves a stored date+time pair to an absolute instant.
// ok is false when the stored strings do not parse; pre-canonicalization
// legacy rows fall through here and are treated as not started.
func StartInstant(date, tm string) (start time.Time, ok bool) {
	canon, err := ParseMatchDate(date)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(canonicalDateLayout+" "+timeLayout, canon+" "+tm, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HasStarted reports whether the match kicked off at or before now.
// Callers must evaluate all predicates of one operation against a single
// now so they cannot disagree with each other.
func HasStarted(m *models.Match, now time.Time) bool {
	start, ok := StartInstant(m.MatchDate, m.MatchTime)
	if !ok {
		return false
	}
	return !now.Before(start)
}

// HasFinished reports whether the grace period after kickoff has elapsed.
func HasFinished(m *models.Match, now time.Time) bool {
	start, ok := StartInstant(m.MatchDate, m.MatchTime)
	if !ok {
		return false
	}
	return !now.Before(start.Add(GracePeriod))
}
