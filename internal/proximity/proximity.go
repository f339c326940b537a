// Package proximity stands in for real positioning. Every random decision goes
// through an injected Source so callers can script the outcome.
package proximity

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tahcohcat/puravida-web/internal/models"
	"github.com/tahcohcat/puravida-web/internal/notify"
)

const DefaultSuccessRate = 0.8

// Source yields floats in [0,1).
type Source interface {
	Float64() float64
}

// lockedSource serializes a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSource returns a goroutine-safe Source. A zero seed uses the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// Explorer is a cosmetic nearby player. Nothing about it is shared or persisted.
type Explorer struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Level    int                `json:"level"`
	Position models.Coordinates `json:"position"`
}

var explorerNames = []string{"Sofía", "Mateo", "Valentina", "Diego", "Camila", "Andrés", "Isabella", "Luis"}

type Simulator struct {
	src         Source
	successRate float64
}

func NewSimulator(src Source, successRate float64) *Simulator {
	if src == nil {
		src = NewSource(0)
	}
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	return &Simulator{src: src, successRate: successRate}
}

func (s *Simulator) SuccessRate() float64 { return s.successRate }

// Position returns a point over Costa Rica: lat in [9.7,10.7), lng in (-85,-84].
func (s *Simulator) Position() models.Coordinates {
	return models.Coordinates{
		Lat: 9.7 + s.src.Float64(),
		Lng: -84.0 - s.src.Float64(),
	}
}

// AttemptCheckIn flips the proximity coin for a location.
func (s *Simulator) AttemptCheckIn(locationID string) notify.CheckInOutcome {
	return notify.CheckInOutcome{
		LocationID: locationID,
		Success:    s.src.Float64() > 1-s.successRate,
	}
}

// NearbyExplorers returns n made-up explorers scattered around the country.
func (s *Simulator) NearbyExplorers(n int) []Explorer {
	if n < 0 {
		n = 0
	}
	out := make([]Explorer, 0, n)
	for i := 0; i < n; i++ {
		name := explorerNames[int(s.src.Float64()*float64(len(explorerNames)))%len(explorerNames)]
		out = append(out, Explorer{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("%s %d", name, i+1),
			Level:    1 + int(s.src.Float64()*5),
			Position: s.Position(),
		})
	}
	return out
}
