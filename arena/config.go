package arena

import (
	"os"
	"time"
)

// ============================================================================
// Simulation constants
// ============================================================================

var debugMode = os.Getenv("DEBUG") == "1"

// Tick loop.
const (
	TICK_INTERVAL      = 100 * time.Millisecond
	TICK_CAP_STANDARD  = 200
	TICK_CAP_PRECISION = 500
)

// Search caps. Every heuristic is hard-capped because a tick's decisions are
// not preemptible and per-tick latency must stay bounded regardless of trail
// length.
const (
	OPEN_SPACE_CAP_STANDARD   = 30
	OPEN_SPACE_CAP_PRECISION  = 100
	LOOKAHEAD_DEPTH_STANDARD  = 10
	LOOKAHEAD_DEPTH_PRECISION = 20
	SURVIVAL_DEPTH            = 8
	TRAP_DEPTH_CAP            = 20
)

// Standard-mode scoring.
const (
	WEIGHT_OPEN_SPACE      = 10.0
	WEIGHT_LOOKAHEAD       = 5.0
	STRAIGHT_BONUS         = 3.0
	PROXIMITY_RANGE        = 5
	PROXIMITY_PENALTY_STEP = 5.0
	MOBILITY_PENALTY       = 15.0
	SECOND_BEST_CHANCE     = 0.15
	SECOND_BEST_GAP        = 25.0
)

// Precision-mode scoring.
const (
	TRAP_PENALTY             = 10000.0
	PRECISION_STRAIGHT_BONUS = 2.0
	WALL_HUG_PREFERRED       = 1.5
	WALL_HUG_AVOIDED         = 0.5
	TOP_TIER_BAND            = 0.08
	TIGHT_TIER_BAND          = 0.024
)
