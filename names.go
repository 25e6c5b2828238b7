package main

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Neon", "Silent", "Swift", "Bold", "Rogue", "Prime", "Vivid", "Stray",
	"Lucid", "Rapid", "Static", "Cobalt", "Amber", "Crimson", "Chrome", "Vector",
	"Binary", "Phantom", "Zero", "Solid", "Hollow", "Golden", "Silver", "Dark",
}

var riders = []string{
	"Rider", "Runner", "Racer", "Drifter", "Pilot", "Courier", "Scout", "Ghost",
	"Circuit", "Cycle", "Signal", "Daemon", "Packet", "Vertex", "Photon", "Pulse",
}

var rng *rand.Rand

func init() {
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateRandomCallsign creates a spectator callsign in format: AdjectiveRiderNumber
func GenerateRandomCallsign() string {
	adjective := adjectives[rng.Intn(len(adjectives))]
	rider := riders[rng.Intn(len(riders))]
	number := rng.Intn(100)
	return fmt.Sprintf("%s%s%d", adjective, rider, number)
}
