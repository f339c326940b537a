package notify

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink turns events into prometheus counters.
type MetricsSink struct {
	points       prometheus.Counter
	achievements *prometheus.CounterVec
	levelUps     prometheus.Counter
	level        prometheus.Gauge
	checkIns     *prometheus.CounterVec
}

func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	m := &MetricsSink{
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "puravida",
			Name:      "points_awarded_total",
			Help:      "Points announced by points-awarded events (check-ins and activities).",
		}),
		achievements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "puravida",
			Name:      "achievements_unlocked_total",
			Help:      "Badges unlocked, by badge id.",
		}, []string{"badge"}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "puravida",
			Name:      "level_ups_total",
			Help:      "Level-up notifications emitted.",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "puravida",
			Name:      "explorer_level",
			Help:      "Most recent level reached.",
		}),
		checkIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "puravida",
			Name:      "checkin_attempts_total",
			Help:      "Simulated proximity check-in attempts, by outcome.",
		}, []string{"success"}),
	}
	if reg != nil {
		reg.MustRegister(m.points, m.achievements, m.levelUps, m.level, m.checkIns)
	}
	return m
}

func (m *MetricsSink) Notify(e Event) {
	switch p := e.Payload.(type) {
	case PointsAwarded:
		m.points.Add(float64(p.Amount))
	case AchievementUnlocked:
		m.achievements.WithLabelValues(p.BadgeID).Inc()
	case LevelUp:
		m.levelUps.Inc()
		m.level.Set(float64(p.NewLevel))
	case CheckInOutcome:
		m.checkIns.WithLabelValues(strconv.FormatBool(p.Success)).Inc()
	}
}
