package predictor

import (
	"math"

	"cricket-predictor/internal/domain"
)

const (
	baseScore       = 160.0
	homeVenueBonus  = 15.0
	strengthWeight  = 0.5
	marginFraction  = 0.08
	scoreFloor      = 100
	scoreCeiling    = 300
	intervalFloor   = 80
	intervalCeiling = 250
)

// Unknown pitch or weather keys contribute 0 rather than erroring, so the
// predictor stays total over its input space.
var pitchFactors = map[string]float64{
	"flat":          25,
	"balanced":      10,
	"pace-friendly": 5,
	"spin-friendly": -5,
}

var weatherFactors = map[string]float64{
	"sunny":    10,
	"overcast": 5,
	"humid":    -5,
	"rainy":    -15,
}

type ScoreInput struct {
	Team1     domain.Team
	Team2     domain.Team
	Venue     string
	PitchType string
	Weather   string
	Overs     int
}

type ScoreFactors struct {
	TeamStrength   int `json:"team_strength"`
	VenueAdvantage int `json:"venue_advantage"`
	PitchFactor    int `json:"pitch_factor"`
	WeatherImpact  int `json:"weather_impact"`
}

type ScoreResult struct {
	PredictedScore     int          `json:"predicted_score"`
	ConfidenceInterval [2]int       `json:"confidence_interval"`
	Confidence         int          `json:"confidence"`
	Factors            ScoreFactors `json:"factors"`

	// Raw values feeding the stored prediction row. The unclamped score
	// and the unrounded confidence are what get persisted; the strengths
	// are stored as provisional win probabilities until reconciliation.
	RawScore      int     `json:"-"`
	RawConfidence float64 `json:"-"`
	Team1Strength float64 `json:"-"`
	Team2Strength float64 `json:"-"`
}

// PredictScore applies the first-innings heuristic: additive strength,
// venue, pitch, and weather terms on top of a fixed base, scaled by the
// overs fraction of a full Twenty20 innings.
func PredictScore(in ScoreInput, rnd Source) ScoreResult {
	strength1 := Strength(in.Team1)
	strength2 := Strength(in.Team2)
	strengthDelta := (strength1 - strength2) * strengthWeight

	venueBonus := 0.0
	if in.Team1.HomeGround == in.Venue {
		venueBonus = homeVenueBonus
	}

	pitchFactor := pitchFactors[in.PitchType]
	weatherFactor := weatherFactors[in.Weather]

	raw := baseScore + strengthDelta + venueBonus + pitchFactor + weatherFactor
	oversMultiplier := float64(in.Overs) / 20.0
	predicted := int(math.Round(raw * oversMultiplier))

	confidence := clampFloat(85+rnd.Float64()*10, 70, 95)
	margin := int(math.Round(float64(predicted) * marginFraction))

	return ScoreResult{
		PredictedScore: clampInt(predicted, scoreFloor, scoreCeiling),
		ConfidenceInterval: [2]int{
			max(intervalFloor, predicted-margin),
			min(intervalCeiling, predicted+margin),
		},
		Confidence: int(math.Round(confidence)),
		Factors: ScoreFactors{
			TeamStrength:   int(math.Round(strength1 - strength2)),
			VenueAdvantage: int(venueBonus),
			PitchFactor:    int(pitchFactor),
			WeatherImpact:  int(weatherFactor),
		},
		RawScore:      predicted,
		RawConfidence: confidence,
		Team1Strength: strength1,
		Team2Strength: strength2,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
