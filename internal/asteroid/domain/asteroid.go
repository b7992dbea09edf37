package domain

import "time"

type Diameter struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Velocity struct {
	KMPerSecond float64 `json:"km_per_second"`
	KMPerHour   float64 `json:"km_per_hour"`
}

type MissDistance struct {
	Kilometers float64 `json:"kilometers"`
	Lunar      float64 `json:"lunar"`
}

type OrbitalData struct {
	Eccentricity           float64 `json:"eccentricity"`
	SemiMajorAxis          float64 `json:"semi_major_axis"`
	Inclination            float64 `json:"inclination"`
	AscendingNodeLongitude float64 `json:"ascending_node_longitude"`
	PerihelionArgument     float64 `json:"perihelion_argument"`
	MeanAnomaly            float64 `json:"mean_anomaly"`
	OrbitalPeriod          float64 `json:"orbital_period"`
	EpochOsculation        float64 `json:"epoch_osculation"`
}

// Asteroid is one tracked near-Earth object. The NeoWs id is the natural
// key; records are upserted on every fetch.
type Asteroid struct {
	AsteroidID             string       `json:"asteroid_id" gorm:"primaryKey"`
	Name                   string       `json:"name" gorm:"not null"`
	Diameter               Diameter     `json:"diameter" gorm:"embedded;embeddedPrefix:diameter_"`
	Velocity               Velocity     `json:"velocity" gorm:"embedded;embeddedPrefix:velocity_"`
	MissDistance           MissDistance `json:"miss_distance" gorm:"embedded;embeddedPrefix:miss_distance_"`
	CloseApproachDate      time.Time    `json:"close_approach_date"`
	IsPotentiallyHazardous bool         `json:"is_potentially_hazardous"`
	RiskScore              int          `json:"risk_score"`
	RiskCategory           string       `json:"risk_category" gorm:"default:Low"`
	Orbital                *OrbitalData `json:"orbital_data,omitempty" gorm:"serializer:json"`
	LastUpdated            time.Time    `json:"last_updated"`
}
