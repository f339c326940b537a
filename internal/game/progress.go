package game

import (
	"github.com/tahcohcat/puravida-web/internal/models"
)

// Progress is the profile summary shown to the explorer.
type Progress struct {
	Points              int     `json:"points"`
	Level               int     `json:"level"`
	CurrentLevelPoints  int     `json:"currentLevelPoints"`
	NextLevelPoints     int     `json:"nextLevelPoints"`
	LevelProgress       float64 `json:"levelProgress"`
	VisitedLocations    int     `json:"visitedLocations"`
	TotalLocations      int     `json:"totalLocations"`
	CompletedActivities int     `json:"completedActivities"`
	TotalActivities     int     `json:"totalActivities"`
	TotalPointsPossible int     `json:"totalPointsPossible"`
	UnlockedBadges      int     `json:"unlockedBadges"`
	TotalBadges         int     `json:"totalBadges"`
}

func (e *Engine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, next := LevelBounds(e.user.Level)
	return Progress{
		Points:              e.user.Points,
		Level:               e.user.Level,
		CurrentLevelPoints:  current,
		NextLevelPoints:     next,
		LevelProgress:       LevelProgress(e.user.Points, e.user.Level),
		VisitedLocations:    models.CountVisited(e.locations),
		TotalLocations:      len(e.locations),
		CompletedActivities: models.CountCompletedActivities(e.locations),
		TotalActivities:     models.TotalActivities(e.locations),
		TotalPointsPossible: models.TotalAwardablePoints(e.locations),
		UnlockedBadges:      models.CountUnlocked(e.badges),
		TotalBadges:         len(e.badges),
	}
}
