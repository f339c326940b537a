// Package notify carries the side effects the engine reports (points, badges,
// level changes) to whatever displays them.
package notify

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tahcohcat/puravida-web/internal/logger"
)

type Kind string

const (
	KindPointsAwarded       Kind = "points_awarded"
	KindAchievementUnlocked Kind = "achievement_unlocked"
	KindLevelUp             Kind = "level_up"
	KindCheckInOutcome      Kind = "checkin_outcome"
)

type Payload interface {
	Kind() Kind
}

type PointsAwarded struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

func (PointsAwarded) Kind() Kind { return KindPointsAwarded }

type AchievementUnlocked struct {
	BadgeID     string `json:"badgeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (AchievementUnlocked) Kind() Kind { return KindAchievementUnlocked }

type LevelUp struct {
	NewLevel int `json:"newLevel"`
}

func (LevelUp) Kind() Kind { return KindLevelUp }

// CheckInOutcome is reported by the proximity simulator, never by the engine.
type CheckInOutcome struct {
	LocationID string `json:"locationId"`
	Success    bool   `json:"success"`
}

func (CheckInOutcome) Kind() Kind { return KindCheckInOutcome }

type Event struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
	Payload Payload   `json:"payload"`
}

func NewEvent(p Payload, at time.Time) Event {
	return Event{ID: uuid.NewString(), Kind: p.Kind(), At: at, Payload: p}
}

// UnmarshalJSON restores the concrete payload type from the event kind.
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	var raw struct {
		alias
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var (
		p   Payload
		err error
	)
	switch raw.Kind {
	case KindPointsAwarded:
		p, err = decodePayload[PointsAwarded](raw.Payload)
	case KindAchievementUnlocked:
		p, err = decodePayload[AchievementUnlocked](raw.Payload)
	case KindLevelUp:
		p, err = decodePayload[LevelUp](raw.Payload)
	case KindCheckInOutcome:
		p, err = decodePayload[CheckInOutcome](raw.Payload)
	default:
		return fmt.Errorf("unknown event kind %q", raw.Kind)
	}
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", raw.Kind, err)
	}

	*e = Event(raw.alias)
	e.Payload = p
	return nil
}

func decodePayload[T Payload](raw json.RawMessage) (Payload, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Sink receives events. Implementations must not call back into the engine.
type Sink interface {
	Notify(Event)
}

type SinkFunc func(Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

type multi []Sink

// Multi fans every event out to each sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}

// Recorder keeps every event it is given.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]Kind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// LogSink writes each event as a log line, the server-side stand-in for a toast.
type LogSink struct {
	log *logger.Log
}

func NewLogSink(l *logger.Log) *LogSink {
	if l == nil {
		l = logger.New()
	}
	return &LogSink{log: l}
}

func (s *LogSink) Notify(e Event) {
	switch p := e.Payload.(type) {
	case PointsAwarded:
		s.log.Info(fmt.Sprintf("+%d points! %s", p.Amount, p.Reason))
	case AchievementUnlocked:
		s.log.Info(fmt.Sprintf("Achievement Unlocked! %s: %s", p.Name, p.Description))
	case LevelUp:
		s.log.Info(fmt.Sprintf("Level Up! You've reached level %d!", p.NewLevel))
	case CheckInOutcome:
		if p.Success {
			s.log.Info("Check-in successful! You've earned points for visiting this location.")
		} else {
			s.log.Warn("Check-in failed. You need to be closer to this location to check in.")
		}
	default:
		s.log.Debug(fmt.Sprintf("unhandled event %s", e.Kind))
	}
}
