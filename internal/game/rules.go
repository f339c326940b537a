package game

import (
	"github.com/tahcohcat/puravida-web/internal/models"
)

const (
	BadgeFirstCheckIn       = "first-checkin"
	BadgeCulturalEnthusiast = "cultural-enthusiast"
	BadgeNatureLover        = "nature-lover"
	BadgeFoodie             = "foodie"
	BadgeAdventurer         = "adventurer"
	BadgeHistoryBuff        = "history-buff"
	BadgeRegionExplorer     = "region-explorer"
	BadgeMasterExplorer     = "master-explorer"
)

// Rule decides whether a badge unlocks given the aggregate counts of the whole catalog.
type Rule func(s models.Stats) bool

func visitedAtLeast(t models.LocationType, n int) Rule {
	return func(s models.Stats) bool { return s.VisitedByType[t] >= n }
}

// badgeRules is keyed by badge id. Badges without a rule never unlock.
var badgeRules = map[string]Rule{
	BadgeFirstCheckIn: func(s models.Stats) bool { return s.VisitedLocations > 0 },
	// Completed activities at Cultural locations, per the badge description,
	// not the number of Cultural locations visited.
	BadgeCulturalEnthusiast: func(s models.Stats) bool { return s.CompletedByType[models.TypeCultural] >= 5 },
	BadgeNatureLover:        visitedAtLeast(models.TypeNatural, 3),
	BadgeFoodie:             visitedAtLeast(models.TypeCulinary, 3),
	BadgeAdventurer:         visitedAtLeast(models.TypeAdventure, 3),
	BadgeHistoryBuff:        visitedAtLeast(models.TypeHistorical, 3),
	BadgeRegionExplorer:     func(s models.Stats) bool { return s.DistinctRegions >= 3 },
	BadgeMasterExplorer:     func(s models.Stats) bool { return s.VisitedLocations >= 10 },
}

// RuleFor returns the unlock rule for a badge id.
func RuleFor(badgeID string) (Rule, bool) {
	r, ok := badgeRules[badgeID]
	return r, ok
}
