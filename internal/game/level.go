package game

const (
	PointsPerLevel   = 500
	AchievementBonus = 100
)

// LevelForPoints is floor(points/500)+1, never below 1.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// LevelBounds returns the point totals at which level starts and the next one begins.
func LevelBounds(level int) (current, next int) {
	if level < 1 {
		level = 1
	}
	return (level - 1) * PointsPerLevel, level * PointsPerLevel
}

// LevelProgress is the percentage of the way from the current level to the next, in [0,100].
func LevelProgress(points, level int) float64 {
	current, next := LevelBounds(level)
	pct := float64(points-current) / float64(next-current) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
