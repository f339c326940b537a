package models

import (
	"time"
)

// User is the single explorer profile of an installation
type User struct {
	Name                string    `json:"name"`
	Avatar              string    `json:"avatar"`
	Level               int       `json:"level"`
	Points              int       `json:"points"`
	Achievements        []Badge   `json:"achievements"`
	Interests           []string  `json:"interests"`
	VisitedLocations    int       `json:"visitedLocations"`
	CompletedActivities int       `json:"completedActivities"`
	JoinDate            time.Time `json:"joinDate"`
}

// Clone returns a deep copy so callers can't reach engine state through slices.
func (u User) Clone() User {
	cp := u
	cp.Achievements = CloneBadges(u.Achievements)
	if u.Interests != nil {
		cp.Interests = append([]string{}, u.Interests...)
	}
	return cp
}

// HasAchievement reports whether a badge snapshot with the given id was recorded.
func (u User) HasAchievement(badgeID string) bool {
	for _, b := range u.Achievements {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}
