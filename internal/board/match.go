package board

import (
	"math/rand"
	"strings"
	"time"
)

// Match picks one load for a carrier origin and requested equipment type.
// Only same-state loads are considered; among those, equipment matches are
// preferred, and ties are broken by uniform random choice from rng. The
// random source is injected so callers can seed it deterministically; an rng
// shared across goroutines must be built on a concurrency-safe source.
func (b *Board) Match(origin, equipmentType string, rng *rand.Rand, referenceDate time.Time) (Load, bool) {
	if b == nil || rng == nil {
		return Load{}, false
	}
	state := NormalizeState(origin)
	if state == "" {
		return Load{}, false
	}

	var stateMatches []Load
	for _, load := range b.Snapshot(referenceDate) {
		if NormalizeState(load.Origin) == state {
			stateMatches = append(stateMatches, load)
		}
	}
	if len(stateMatches) == 0 {
		return Load{}, false
	}

	wanted := normalizeEquipment(equipmentType)
	var equipmentMatches []Load
	for _, load := range stateMatches {
		if normalizeEquipment(load.EquipmentType) == wanted {
			equipmentMatches = append(equipmentMatches, load)
		}
	}

	candidates := equipmentMatches
	if len(candidates) == 0 {
		candidates = stateMatches
	}
	return candidates[rng.Intn(len(candidates))], true
}

func normalizeEquipment(equipment string) string {
	return strings.ToLower(strings.TrimSpace(equipment))
}
