package notify

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/puravida-web/internal/logger"
)

var at = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewEvent(t *testing.T) {
	e := NewEvent(LevelUp{NewLevel: 2}, at)

	assert.Equal(t, KindLevelUp, e.Kind)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, at, e.At)

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind":"level_up"`)
	assert.Contains(t, string(raw), `"newLevel":2`)
}

func TestMultiPreservesOrder(t *testing.T) {
	var a, b Recorder
	sink := Multi(&a, nil, &b)

	sink.Notify(NewEvent(PointsAwarded{Amount: 10}, at))
	sink.Notify(NewEvent(LevelUp{NewLevel: 2}, at))

	want := []Kind{KindPointsAwarded, KindLevelUp}
	assert.Equal(t, want, a.Kinds())
	assert.Equal(t, want, b.Kinds())

	a.Reset()
	assert.Empty(t, a.Events())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure("debug", logger.FormatJSON, &buf)
	t.Cleanup(func() { logger.Configure("info", logger.FormatConsole, os.Stdout) })

	s := NewLogSink(nil)
	s.Notify(NewEvent(PointsAwarded{Amount: 100, Reason: "You checked in at La Fortuna Waterfall"}, at))
	s.Notify(NewEvent(AchievementUnlocked{BadgeID: "first-checkin", Name: "¡Pura Vida!", Description: "First check-in in Costa Rica"}, at))
	s.Notify(NewEvent(CheckInOutcome{Success: false}, at))

	out := buf.String()
	assert.Contains(t, out, "+100 points! You checked in at La Fortuna Waterfall")
	assert.Contains(t, out, "Achievement Unlocked!")
	assert.Contains(t, out, "Check-in failed")
}

func TestMetricsSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsSink(reg)

	m.Notify(NewEvent(PointsAwarded{Amount: 100}, at))
	m.Notify(NewEvent(PointsAwarded{Amount: 60}, at))
	m.Notify(NewEvent(AchievementUnlocked{BadgeID: "first-checkin"}, at))
	m.Notify(NewEvent(LevelUp{NewLevel: 3}, at))
	m.Notify(NewEvent(CheckInOutcome{Success: true}, at))
	m.Notify(NewEvent(CheckInOutcome{Success: false}, at))
	m.Notify(NewEvent(CheckInOutcome{Success: false}, at))

	assert.InDelta(t, 160, testutil.ToFloat64(m.points), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.achievements.WithLabelValues("first-checkin")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.levelUps), 1e-9)
	assert.InDelta(t, 3, testutil.ToFloat64(m.level), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(m.checkIns.WithLabelValues("false")), 1e-9)
}

func TestEventJSONRoundTrip(t *testing.T) {
	events := []Event{
		NewEvent(PointsAwarded{Amount: 100, Reason: "You checked in at Orosi Valley"}, at),
		NewEvent(AchievementUnlocked{BadgeID: "nature-lover", Name: "Nature Lover", Description: "Visit 3 natural landmarks"}, at),
		NewEvent(LevelUp{NewLevel: 2}, at),
		NewEvent(CheckInOutcome{LocationID: "8", Success: true}, at),
	}

	raw, err := json.Marshal(events)
	require.NoError(t, err)

	var got []Event
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, events, got)
}

func TestEventUnmarshal_UnknownKind(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"id":"x","kind":"confetti","payload":{}}`), &e)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":"x","kind":"level_up","payload":{"newLevel":"two"}}`), &e)
	assert.Error(t, err)
}
