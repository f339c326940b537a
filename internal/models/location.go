package models

import (
	"time"
)

type Region string

const (
	RegionCentralValley  Region = "Central Valley"
	RegionNorthernPlains Region = "Northern Plains"
	RegionCaribbeanCoast Region = "Caribbean Coast"
	RegionPacificCoast   Region = "Pacific Coast"
	RegionCentralPacific Region = "Central Pacific"
)

// Regions lists every region in display order.
var Regions = []Region{
	RegionCentralValley,
	RegionNorthernPlains,
	RegionCaribbeanCoast,
	RegionPacificCoast,
	RegionCentralPacific,
}

func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

type LocationType string

const (
	TypeHistorical LocationType = "Historical"
	TypeCultural   LocationType = "Cultural"
	TypeNatural    LocationType = "Natural"
	TypeCulinary   LocationType = "Culinary"
	TypeAdventure  LocationType = "Adventure"
)

var LocationTypes = []LocationType{
	TypeHistorical,
	TypeCultural,
	TypeNatural,
	TypeCulinary,
	TypeAdventure,
}

func (t LocationType) Valid() bool {
	for _, known := range LocationTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a bite-sized task owned by exactly one Location
type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PointValue  int    `json:"pointValue"`
	Completed   bool   `json:"completed"`
}

// Location is a catalog point of interest together with its visitation state
type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Region      Region       `json:"region"`
	Coordinates Coordinates  `json:"coordinates"`
	PointValue  int          `json:"pointValue"`
	Type        LocationType `json:"type"`
	Visited     bool         `json:"visited"`
	VisitDate   *time.Time   `json:"visitDate,omitempty"`
	Image       string       `json:"image"`
	Activities  []Activity   `json:"activities"`
}

func (l Location) Clone() Location {
	cp := l
	if l.VisitDate != nil {
		t := *l.VisitDate
		cp.VisitDate = &t
	}
	if l.Activities != nil {
		cp.Activities = append([]Activity{}, l.Activities...)
	}
	return cp
}

// ActivityIndex returns the index of the activity with the given id, or -1.
func (l Location) ActivityIndex(activityID string) int {
	for i, a := range l.Activities {
		if a.ID == activityID {
			return i
		}
	}
	return -1
}

func CloneLocations(locations []Location) []Location {
	if locations == nil {
		return nil
	}
	out := make([]Location, len(locations))
	for i, l := range locations {
		out[i] = l.Clone()
	}
	return out
}
