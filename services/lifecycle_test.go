// file: services/lifecycle_test.go
package services

import (
	"testing"
	"time"

	"github.com/Th3Mauryy/RefZone-sub000/models"
)

func TestParseMatchDate_AcceptedFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"25/12/2026", "2026-12-25"},
		{"01/02/2026", "2026-02-01"}, // DD/MM, not MM/DD
		{"2026-12-25", "2026-12-25"},
		{" 2026-03-09 ", "2026-03-09"},
	}
	for _, tc := range cases {
		got, err := ParseMatchDate(tc.in)
		if err != nil {
			t.Fatalf("ParseMatchDate(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMatchDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseMatchDate_RejectsOtherFormats(t *testing.T) {
	for _, in := range []string{"", "25.12.2026", "December 25 2026", "2026/12/25x", "32/01/2026", "2026-13-01", "20261225"} {
		if _, err := ParseMatchDate(in); err == nil {
			t.Fatalf("ParseMatchDate(%q) accepted, want error", in)
		}
	}
}

func TestParseMatchTime(t *testing.T) {
	if got, err := ParseMatchTime("09:30"); err != nil || got != "09:30" {
		t.Fatalf("ParseMatchTime(09:30) = %q, %v", got, err)
	}
	for _, in := range []string{"", "9.30", "25:00", "12:61", "noon"} {
		if _, err := ParseMatchTime(in); err == nil {
			t.Fatalf("ParseMatchTime(%q) accepted, want error", in)
		}
	}
}

func matchAt(start time.Time) *models.Match {
	return &models.Match{
		MatchDate: start.Format("2006-01-02"),
		MatchTime: start.Format("15:04"),
	}
}

func TestHasStartedAndFinished(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name     string
		start    time.Time
		started  bool
		finished bool
	}{
		{"future", now.Add(10 * time.Minute), false, false},
		{"kickoff", now, true, false},
		{"in progress", now.Add(-30 * time.Minute), true, false},
		{"at grace boundary", now.Add(-GracePeriod), true, true},
		{"long over", now.Add(-2 * time.Hour), true, true},
	}
	for _, tc := range cases {
		m := matchAt(tc.start)
		if got := HasStarted(m, now); got != tc.started {
			t.Errorf("%s: HasStarted = %v, want %v", tc.name, got, tc.started)
		}
		if got := HasFinished(m, now); got != tc.finished {
			t.Errorf("%s: HasFinished = %v, want %v", tc.name, got, tc.finished)
		}
	}
}

// A finished match is always a started match, whatever the offset.
func TestFinishedImpliesStarted(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.Local)
	for offset := -4 * time.Hour; offset <= 4*time.Hour; offset += 7 * time.Minute {
		m := matchAt(now.Add(offset))
		if HasFinished(m, now) && !HasStarted(m, now) {
			t.Fatalf("offset %s: finished but not started", offset)
		}
	}
}

// Rows that predate date canonicalization and do not parse are treated
// conservatively as not started.
func TestUnparseableDateIsNotStarted(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.Local)
	m := &models.Match{MatchDate: "someday", MatchTime: "12:00"}
	if HasStarted(m, now) || HasFinished(m, now) {
		t.Fatal("unparseable date classified as started/finished")
	}
}

func TestStartInstant_LatinFormatStillResolves(t *testing.T) {
	start, ok := StartInstant("15/05/2026", "18:30")
	if !ok {
		t.Fatal("StartInstant rejected DD/MM/YYYY")
	}
	want := time.Date(2026, 5, 15, 18, 30, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Fatalf("StartInstant = %v, want %v", start, want)
	}
}
