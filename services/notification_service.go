// file: services/notification_service.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

const (
	EventRefereeAssigned    = "referee_assigned"
	EventRefereeSubstituted = "referee_substituted"
	EventRefereeUnassigned  = "referee_unassigned"
	EventMatchFinalized     = "match_finalized"
	EventMatchCancelled     = "match_cancelled"
)

// NotificationEvent is what the core hands to the external dispatcher.
// Delivery, templating and retries are entirely its concern; the core
// only guarantees the recipient set is complete and gathered before the
// match row disappears.
type NotificationEvent struct {
	Type       string    `json:"type"`
	Recipients []uint32  `json:"recipients"`
	MatchID    uint32    `json:"match_id"`
	MatchName  string    `json:"match_name"`
	MatchDate  string    `json:"match_date"`
	MatchTime  string    `json:"match_time"`
	QueuedAt   time.Time `json:"queued_at"`
}

type Notifier interface {
	Send(event NotificationEvent) error
}

// LogNotifier is the fallback used when no Redis queue is configured.
type LogNotifier struct{}

func (LogNotifier) Send(e NotificationEvent) error {
	log.Printf("notification: %s match=%d recipients=%v", e.Type, e.MatchID, e.Recipients)
	return nil
}

// RedisNotifier pushes JSON events onto a list the dispatcher consumes.
type RedisNotifier struct {
	Queue string
}

func (n RedisNotifier) Send(e NotificationEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return database.RDB.LPush(database.Ctx, n.Queue, payload).Err()
}

var notifier Notifier = LogNotifier{}

func SetNotifier(n Notifier) {
	notifier = n
}

// notify queues the event; a failed send is logged, never surfaced to the
// caller, since the mutation it announces has already committed.
func notify(eventType string, m *models.Match, recipients ...uint32) {
	if len(recipients) == 0 {
		return
	}
	e := NotificationEvent{
		Type:       eventType,
		Recipients: recipients,
		MatchID:    m.ID,
		MatchName:  m.Name,
		MatchDate:  m.MatchDate,
		MatchTime:  m.MatchTime,
		QueuedAt:   time.Now(),
	}
	if err := notifier.Send(e); err != nil {
		log.Printf("Error sending %s notification for match %d: %v", e.Type, e.MatchID, err)
	}
}
