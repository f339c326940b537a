package models

// The functions in this file are pure aggregations over a location catalog.
// None of them mutate their input.

func CountVisited(locations []Location) int {
	n := 0
	for _, l := range locations {
		if l.Visited {
			n++
		}
	}
	return n
}

func CountCompletedActivities(locations []Location) int {
	n := 0
	for _, l := range locations {
		n += countCompleted(l.Activities)
	}
	return n
}

// CountCompletedActivitiesByType counts completed activities whose owning
// location has the given type. The location itself need not be visited.
func CountCompletedActivitiesByType(locations []Location, t LocationType) int {
	n := 0
	for _, l := range locations {
		if l.Type == t {
			n += countCompleted(l.Activities)
		}
	}
	return n
}

func CountVisitedByType(locations []Location, t LocationType) int {
	n := 0
	for _, l := range locations {
		if l.Visited && l.Type == t {
			n++
		}
	}
	return n
}

func CountVisitedByRegion(locations []Location, r Region) int {
	n := 0
	for _, l := range locations {
		if l.Visited && l.Region == r {
			n++
		}
	}
	return n
}

// DistinctVisitedRegions is the cardinality of the set of regions among visited locations.
func DistinctVisitedRegions(locations []Location) int {
	seen := make(map[Region]struct{})
	for _, l := range locations {
		if l.Visited {
			seen[l.Region] = struct{}{}
		}
	}
	return len(seen)
}

func TotalActivities(locations []Location) int {
	n := 0
	for _, l := range locations {
		n += len(l.Activities)
	}
	return n
}

// TotalAwardablePoints sums every location and activity point value regardless
// of completion state. It is an upper bound used for progress display.
func TotalAwardablePoints(locations []Location) int {
	total := 0
	for _, l := range locations {
		total += l.PointValue
		for _, a := range l.Activities {
			total += a.PointValue
		}
	}
	return total
}

func countCompleted(activities []Activity) int {
	n := 0
	for _, a := range activities {
		if a.Completed {
			n++
		}
	}
	return n
}

// Stats is a snapshot of the aggregate counts badge rules are evaluated against.
type Stats struct {
	VisitedLocations    int
	CompletedActivities int
	VisitedByType       map[LocationType]int
	CompletedByType     map[LocationType]int
	DistinctRegions     int
}

func ComputeStats(locations []Location) Stats {
	s := Stats{
		VisitedLocations:    CountVisited(locations),
		CompletedActivities: CountCompletedActivities(locations),
		VisitedByType:       make(map[LocationType]int, len(LocationTypes)),
		CompletedByType:     make(map[LocationType]int, len(LocationTypes)),
		DistinctRegions:     DistinctVisitedRegions(locations),
	}
	for _, t := range LocationTypes {
		s.VisitedByType[t] = CountVisitedByType(locations, t)
		s.CompletedByType[t] = CountCompletedActivitiesByType(locations, t)
	}
	return s
}
