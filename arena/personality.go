package arena

import (
	"log"
	"math/rand"
)

// ============================================================================
// Per-match agent personalities (precision mode only)
// ============================================================================

// Personality holds the heuristic weights one agent plays with for the whole
// match. Generated once at setup from bounded ranges and never validated
// again at use time; the weights are internal and cannot be supplied from
// outside.
type Personality struct {
	Territory        float64
	Survival         float64
	EscapeRoute      float64
	OpenSpace        float64
	LookAhead        float64
	CenterPreference float64
	Mobility         float64

	WallHug        bool
	Aggressiveness float64 // [0,1)
}

func randomInRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NewPersonality draws a personality from fixed bounded ranges.
func NewPersonality(rng *rand.Rand) Personality {
	p := Personality{
		Territory:        randomInRange(rng, 0.8, 1.8),
		Survival:         randomInRange(rng, 1.0, 2.2),
		EscapeRoute:      randomInRange(rng, 0.5, 1.5),
		OpenSpace:        randomInRange(rng, 0.6, 1.4),
		LookAhead:        randomInRange(rng, 0.4, 1.2),
		CenterPreference: randomInRange(rng, 0.2, 1.0),
		Mobility:         randomInRange(rng, 0.5, 1.5),
		WallHug:          rng.Float64() < 0.3,
		Aggressiveness:   rng.Float64(),
	}
	if debugMode {
		log.Printf("[AI] personality: territory=%.2f survival=%.2f escape=%.2f open=%.2f look=%.2f center=%.2f mobility=%.2f wallhug=%v aggr=%.2f",
			p.Territory, p.Survival, p.EscapeRoute, p.OpenSpace, p.LookAhead,
			p.CenterPreference, p.Mobility, p.WallHug, p.Aggressiveness)
	}
	return p
}
