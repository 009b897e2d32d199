package board

import (
	"sort"
	"strings"
	"time"
)

// searchResultLimit caps how many loads a search returns.
const searchResultLimit = 5

// Search filters the board snapshot by exact equipment type (case
// insensitive), an optional origin substring, and an optional earliest
// pickup time. Results are ordered by loadboard rate descending and capped
// at five loads.
func (b *Board) Search(equipmentType, origin string, pickupAfter *time.Time, referenceDate time.Time) []Load {
	if b == nil {
		return nil
	}
	wanted := normalizeEquipment(equipmentType)
	originQuery := strings.ToLower(strings.TrimSpace(origin))

	var matches []Load
	for _, load := range b.Snapshot(referenceDate) {
		if normalizeEquipment(load.EquipmentType) != wanted {
			continue
		}
		if originQuery != "" && !strings.Contains(strings.ToLower(load.Origin), originQuery) {
			continue
		}
		if pickupAfter != nil && load.PickupDatetime.Before(*pickupAfter) {
			continue
		}
		matches = append(matches, load)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].LoadboardRate > matches[j].LoadboardRate
	})
	if len(matches) > searchResultLimit {
		matches = matches[:searchResultLimit]
	}
	return matches
}
