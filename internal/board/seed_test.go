package board

import (
	"testing"
)

func TestSeedLoadsCoverEveryStateOnce(t *testing.T) {
	t.Parallel()

	loads := SeedLoads()
	if len(loads) != 51 {
		t.Fatalf("seed load count = %d, want 51", len(loads))
	}

	states := make(map[string]string, len(loads))
	ids := make(map[string]bool, len(loads))
	for _, load := range loads {
		state := NormalizeState(load.Origin)
		if state == "" {
			t.Fatalf("load %s origin %q has no parsable state", load.LoadID, load.Origin)
		}
		if prev, dup := states[state]; dup {
			t.Fatalf("state %s seeded twice: %s and %s", state, prev, load.LoadID)
		}
		states[state] = load.LoadID
		if ids[load.LoadID] {
			t.Fatalf("duplicate load id %s", load.LoadID)
		}
		ids[load.LoadID] = true

		if !load.PickupDatetime.Before(load.DeliveryDatetime) {
			t.Fatalf("load %s pickup %v not before delivery %v",
				load.LoadID, load.PickupDatetime, load.DeliveryDatetime)
		}
		if load.LoadboardRate <= 0 {
			t.Fatalf("load %s rate = %v, want > 0", load.LoadID, load.LoadboardRate)
		}
	}

	if _, ok := states["DC"]; !ok {
		t.Fatal("expected a D.C. seed load")
	}
}

func TestSeedLoadsEveryStateHasRegion(t *testing.T) {
	t.Parallel()

	for _, load := range SeedLoads() {
		state := NormalizeState(load.Origin)
		if RegionForState(state) == "" {
			t.Fatalf("state %s has no region mapping", state)
		}
	}
}

func TestSeedLoadsAreDeterministic(t *testing.T) {
	t.Parallel()

	first := SeedLoads()
	second := SeedLoads()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seed load %d differs between generations", i)
		}
	}
}
