package game

import (
	"time"

	"github.com/tahcohcat/puravida-web/internal/models"
)

const placeholderImage = "/placeholder.svg"

// DefaultUser is the profile of a fresh installation.
func DefaultUser(joined time.Time) models.User {
	return models.User{
		Name:         "Explorer",
		Avatar:       placeholderImage,
		Level:        1,
		Points:       0,
		Achievements: []models.Badge{},
		Interests:    []string{},
		JoinDate:     joined,
	}
}

// DefaultBadges returns the badge catalog in evaluation order.
func DefaultBadges() []models.Badge {
	return []models.Badge{
		{ID: BadgeFirstCheckIn, Name: "¡Pura Vida!", Description: "First check-in in Costa Rica", Image: placeholderImage},
		{ID: BadgeCulturalEnthusiast, Name: "Cultural Enthusiast", Description: "Complete 5 cultural activities", Image: placeholderImage},
		{ID: BadgeNatureLover, Name: "Nature Lover", Description: "Visit 3 natural landmarks", Image: placeholderImage},
		{ID: BadgeFoodie, Name: "Costa Rican Foodie", Description: "Try 3 local dishes", Image: placeholderImage},
		{ID: BadgeAdventurer, Name: "Adventure Seeker", Description: "Complete 3 adventure activities", Image: placeholderImage},
		{ID: BadgeHistoryBuff, Name: "History Buff", Description: "Visit 3 historical sites", Image: placeholderImage},
		{ID: BadgeRegionExplorer, Name: "Region Explorer", Description: "Visit locations in 3 different regions", Image: placeholderImage},
		{ID: BadgeMasterExplorer, Name: "Pura Vida Master Explorer", Description: "Visit 10 locations in Costa Rica", Image: placeholderImage},
	}
}

func activity(id, name, description string, points int) models.Activity {
	return models.Activity{ID: id, Name: name, Description: description, PointValue: points}
}

// DefaultLocations returns the fixed point-of-interest catalog, nothing visited.
func DefaultLocations() []models.Location {
	return []models.Location{
		{
			ID:          "1",
			Name:        "La Fortuna Waterfall",
			Description: "A stunning 75-meter waterfall in the northern lowlands of Costa Rica, near the Arenal Volcano.",
			Region:      models.RegionNorthernPlains,
			Coordinates: models.Coordinates{Lat: 10.4433, Lng: -84.6731},
			PointValue:  100,
			Type:        models.TypeNatural,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("1-1", "Waterfall Swim", "Take a refreshing swim in the natural pool beneath the waterfall.", 50),
				activity("1-2", "Hiking Photo", "Take a photo of yourself on the hiking trail.", 30),
				activity("1-3", "Wildlife Observation", "Spot and photograph any unique wildlife along the way.", 25),
				activity("1-4", "Eco Cleanup", "Pick up any trash you find on your hike (and take a photo!).", 20),
			},
		},
		{
			ID:          "2",
			Name:        "National Theater of Costa Rica",
			Description: "Historical landmark in San José known for its neoclassical architecture.",
			Region:      models.RegionCentralValley,
			Coordinates: models.Coordinates{Lat: 9.9333, Lng: -84.0833},
			PointValue:  80,
			Type:        models.TypeHistorical,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("2-1", "Architecture Tour", "Take a guided tour of the theater's architecture.", 40),
				activity("2-2", "Cultural Show", "Attend a cultural performance.", 60),
				activity("2-3", "History Selfie", "Take a selfie with the theater entrance.", 10),
				activity("2-4", "Opera Listen", "Listen to an opera or live musical piece in the main auditorium.", 20),
			},
		},
		{
			ID:          "3",
			Name:        "Manuel Antonio National Park",
			Description: "Beautiful national park with beaches, hiking trails and diverse wildlife.",
			Region:      models.RegionCentralPacific,
			Coordinates: models.Coordinates{Lat: 9.3921, Lng: -84.1365},
			PointValue:  120,
			Type:        models.TypeNatural,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("3-1", "Wildlife Spotting", "Photograph at least three different animal species.", 70),
				activity("3-2", "Beach Relaxation", "Relax at one of the park's pristine beaches.", 40),
				activity("3-3", "Jungle Sketch", "Sketch or doodle something you see in the jungle.", 20),
				activity("3-4", "Sunrise Photo", "Capture a sunrise or sunset from inside the park.", 30),
			},
		},
		{
			ID:          "4",
			Name:        "Mercado Central (Central Market)",
			Description: "Traditional market in San José offering local foods, crafts and culture.",
			Region:      models.RegionCentralValley,
			Coordinates: models.Coordinates{Lat: 9.9329, Lng: -84.0795},
			PointValue:  70,
			Type:        models.TypeCulinary,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("4-1", "Food Tasting", "Try a traditional Costa Rican dish like Gallo Pinto.", 50),
				activity("4-2", "Souvenir Shopping", "Purchase a handcrafted souvenir from a local vendor.", 30),
				activity("4-3", "Spice Smell", "Find and smell 3 types of local spices and tell someone your favorite.", 15),
				activity("4-4", "Market Photo", "Take a vibrant photo of the market's main aisle.", 20),
			},
		},
		{
			ID:          "5",
			Name:        "Monteverde Cloud Forest Reserve",
			Description: "Lush cloud forest with incredible biodiversity and suspension bridges.",
			Region:      models.RegionNorthernPlains,
			Coordinates: models.Coordinates{Lat: 10.3010, Lng: -84.8090},
			PointValue:  110,
			Type:        models.TypeAdventure,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("5-1", "Canopy Tour", "Enjoy a zipline adventure through the cloud forest canopy.", 80),
				activity("5-2", "Birdwatching", "Spot the resplendent quetzal or other native birds.", 60),
				activity("5-3", "Bridge Crossing", "Walk all the suspension bridges and take a selfie on one.", 30),
				activity("5-4", "Cloud Mist Photo", "Take a photo in the famous Monteverde clouds.", 20),
			},
		},
		{
			ID:          "6",
			Name:        "Tortuguero National Park",
			Description: "Remote national park known for sea turtle nesting and canal networks.",
			Region:      models.RegionCaribbeanCoast,
			Coordinates: models.Coordinates{Lat: 10.5431, Lng: -83.5050},
			PointValue:  130,
			Type:        models.TypeNatural,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("6-1", "Canal Boat Tour", "Take a boat tour through the park's canals.", 70),
				activity("6-2", "Turtle Watching", "Watch sea turtles nesting (seasonal).", 90),
				activity("6-3", "Jungle Sound Recording", "Record unique jungle sounds for 30 seconds.", 30),
				activity("6-4", "Guide Interview", "Interview a local guide and write a sentence about what you learned.", 20),
			},
		},
		{
			ID:          "7",
			Name:        "Puerto Viejo de Talamanca",
			Description: "A laid-back Caribbean beach town famous for surfing and Afro-Caribbean culture.",
			Region:      models.RegionCaribbeanCoast,
			Coordinates: models.Coordinates{Lat: 9.6566, Lng: -82.7547},
			PointValue:  90,
			Type:        models.TypeAdventure,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("7-1", "Surf Challenge", "Take a surf lesson or paddle out on the waves.", 60),
				activity("7-2", "Cultural Music Night", "Attend a local reggae or Calypso music night.", 30),
				activity("7-3", "Smoothie Stand", "Find and try a tropical fruit smoothie from a street vendor.", 10),
			},
		},
		{
			ID:          "8",
			Name:        "Orosi Valley",
			Description: "Scenic valley with hot springs, coffee plantations, and volcanic views.",
			Region:      models.RegionCentralValley,
			Coordinates: models.Coordinates{Lat: 9.8067, Lng: -83.8555},
			PointValue:  75,
			Type:        models.TypeNatural,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("8-1", "Hot Spring Relaxation", "Soak in the valley's natural hot springs.", 30),
				activity("8-2", "Coffee Tour", "Take a tour of a local coffee plantation and taste a fresh brew.", 30),
				activity("8-3", "Valley Sunrise Photo", "Capture a sunrise photo from a lookout.", 15),
			},
		},
		{
			ID:          "9",
			Name:        "Jacó Beach",
			Description: "Popular Pacific coast town known for surfing, outdoor activities, and nightlife.",
			Region:      models.RegionPacificCoast,
			Coordinates: models.Coordinates{Lat: 9.6156, Lng: -84.6270},
			PointValue:  80,
			Type:        models.TypeCulinary,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("9-1", "Sunset Dinner", "Enjoy dinner at a beachfront restaurant during sunset.", 40),
				activity("9-2", "Oceanside Walk", "Take a walk or bike ride along the Jacó promenade.", 25),
				activity("9-3", "Live Music Night", "Attend a live music evening at a local bar/café.", 15),
			},
		},
		{
			ID:          "10",
			Name:        "Santa Teresa",
			Description: "Trendy beach destination on the Nicoya Peninsula, ideal for relaxation and surfing.",
			Region:      models.RegionPacificCoast,
			Coordinates: models.Coordinates{Lat: 9.6540, Lng: -85.1590},
			PointValue:  100,
			Type:        models.TypeAdventure,
			Image:       placeholderImage,
			Activities: []models.Activity{
				activity("10-1", "Yoga on the Beach", "Join a group yoga session on the sand.", 40),
				activity("10-2", "Sunset Bonfire", "Attend or organize a sunset bonfire gathering.", 25),
				activity("10-3", "Tide Pool Discovery", "Find and photograph sea life in a tide pool.", 15),
				activity("10-4", "Beach Clean Up", "Spend 10 minutes picking up litter and take a selfie afterward.", 20),
			},
		},
	}
}
