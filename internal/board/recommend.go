package board

import (
	"sort"
	"strings"
	"time"
)

// genericHorizonDays discards non-local loads departing more than this many
// days out.
const genericHorizonDays = 3

// sameStateHorizonDays gives same-state loads a looser departure window of
// one recurrence week.
const sameStateHorizonDays = 7

// RecommendationGroup is one recommended load tagged with the equipment type
// that produced it and, when origin scoring applied, a match label: either
// the state code or "<region> region".
type RecommendationGroup struct {
	EquipmentType string
	MatchLabel    string
	Items         []Load
}

// scoredLoad pairs a candidate load with its priority tier for ranking.
type scoredLoad struct {
	load     Load
	priority int
	label    string
}

// Recommend ranks the board's loads for a carrier. Equipment preferences are
// evaluated in order; originState biases scoring toward same-state and then
// same-region loads. The single best-ranked load across all equipment types
// is returned as a one-element group. referenceDate anchors the snapshot and
// the days-until-pickup offsets; callers normally pass the current UTC time.
//
// An empty board, an empty preference list, or no eligible candidates all
// yield an empty slice, never an error.
func (b *Board) Recommend(equipmentPreferences []string, originState string, limitPerEquipment int, referenceDate time.Time) []RecommendationGroup {
	if b == nil || len(b.loads) == 0 || len(equipmentPreferences) == 0 {
		return nil
	}
	if limitPerEquipment <= 0 {
		limitPerEquipment = 1
	}

	state := NormalizeState(originState)
	region := RegionForState(state)
	snapshot := b.Snapshot(referenceDate)

	var (
		best      scoredLoad
		bestFound bool
		bestEquip string
		selected  = make(map[string]struct{})
	)

	for _, equipment := range equipmentPreferences {
		candidates := scoreCandidates(snapshot, equipment, state, region, referenceDate)
		if len(candidates) == 0 {
			continue
		}
		if len(candidates) > limitPerEquipment {
			candidates = candidates[:limitPerEquipment]
		}
		for _, candidate := range candidates {
			if _, dup := selected[candidate.load.LoadID]; dup {
				continue
			}
			if !bestFound || candidate.priority < best.priority ||
				(candidate.priority == best.priority && candidate.load.LoadboardRate > best.load.LoadboardRate) {
				best = candidate
				bestEquip = equipment
				bestFound = true
			}
		}
	}

	if !bestFound {
		return nil
	}
	selected[best.load.LoadID] = struct{}{}
	return []RecommendationGroup{{
		EquipmentType: bestEquip,
		MatchLabel:    best.label,
		Items:         []Load{best.load},
	}}
}

// scoreCandidates filters one equipment type's loads and orders them by
// priority tier, then rate descending. The sort is stable so equal candidates
// keep their board order.
func scoreCandidates(snapshot []Load, equipment, state, region string, referenceDate time.Time) []scoredLoad {
	var scored []scoredLoad
	for _, load := range snapshot {
		if !strings.EqualFold(strings.TrimSpace(load.EquipmentType), strings.TrimSpace(equipment)) {
			continue
		}

		days := daysUntil(referenceDate, load.PickupDatetime)
		loadState := NormalizeState(load.Origin)
		sameState := state != "" && loadState == state

		if sameState {
			if days > sameStateHorizonDays {
				continue
			}
		} else {
			if days < 0 || days > genericHorizonDays {
				continue
			}
		}

		originTier := 2
		label := ""
		switch {
		case sameState:
			originTier = 0
			label = state
		case region != "" && RegionForState(loadState) == region:
			originTier = 1
			label = region + " region"
		}

		dayTier := 2
		switch {
		case days <= 0:
			dayTier = 0
		case days == 1:
			dayTier = 1
		}

		scored = append(scored, scoredLoad{
			load:     load,
			priority: originTier*3 + dayTier,
			label:    label,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].priority != scored[j].priority {
			return scored[i].priority < scored[j].priority
		}
		return scored[i].load.LoadboardRate > scored[j].load.LoadboardRate
	})
	return scored
}
