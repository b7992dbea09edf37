package risk

// Category labels an asteroid's overall risk level.
type Category string

const (
	CategoryLow    Category = "Low"
	CategoryMedium Category = "Medium"
	CategoryHigh   Category = "High"
)

// Input holds the asteroid characteristics that feed the scorer.
type Input struct {
	DiameterMaxKM  float64
	VelocityKMS    float64
	MissDistanceKM float64
	Hazardous      bool
}

// Result is a score in [0,100] with its category label.
type Result struct {
	Score    int
	Category Category
}

// Score computes a weighted risk score from fixed thresholds.
// Hazardous status carries weight 40; diameter, velocity and miss
// distance carry weight 20 each.
func Score(in Input) Result {
	score := 0

	if in.Hazardous {
		score += 40
	}

	// Max diameter above 1km is high risk
	switch {
	case in.DiameterMaxKM > 1:
		score += 20
	case in.DiameterMaxKM > 0.5:
		score += 15
	case in.DiameterMaxKM > 0.1:
		score += 10
	default:
		score += 5
	}

	// Relative velocity above 30km/s is high risk
	switch {
	case in.VelocityKMS > 30:
		score += 20
	case in.VelocityKMS > 20:
		score += 15
	case in.VelocityKMS > 10:
		score += 10
	default:
		score += 5
	}

	// Close approach within 1 million km is high risk
	switch {
	case in.MissDistanceKM < 1_000_000:
		score += 20
	case in.MissDistanceKM < 5_000_000:
		score += 15
	case in.MissDistanceKM < 10_000_000:
		score += 10
	default:
		score += 5
	}

	if score > 100 {
		score = 100
	}

	category := CategoryLow
	if score >= 70 {
		category = CategoryHigh
	} else if score >= 40 {
		category = CategoryMedium
	}

	return Result{Score: score, Category: category}
}
