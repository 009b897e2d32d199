// Package board implements the load board core: the seeded load store,
// the carrier recommendation scoring engine, the negotiation acceptance
// rule, and equipment preference inference.
package board

import (
	"fmt"
	"time"
)

// Load describes one freight load posted on the board.
type Load struct {
	LoadID           string
	Origin           string
	Destination      string
	PickupDatetime   time.Time
	DeliveryDatetime time.Time
	EquipmentType    string
	LoadboardRate    float64
	Weight           int
	CommodityType    string
	NumOfPieces      int
	Miles            int
	Dimensions       string
	Notes            string
}

// Board holds an immutable collection of loads. All methods are safe for
// concurrent use because the load slice is never mutated after construction.
type Board struct {
	loads []Load
}

// New builds a board from the provided loads. Load IDs must be unique and
// every pickup must precede its delivery.
func New(loads []Load) (*Board, error) {
	seen := make(map[string]struct{}, len(loads))
	copied := make([]Load, len(loads))
	for i, load := range loads {
		if load.LoadID == "" {
			return nil, fmt.Errorf("load at index %d has no id", i)
		}
		if _, dup := seen[load.LoadID]; dup {
			return nil, fmt.Errorf("duplicate load id %q", load.LoadID)
		}
		seen[load.LoadID] = struct{}{}
		if !load.PickupDatetime.Before(load.DeliveryDatetime) {
			return nil, fmt.Errorf("load %q pickup is not before delivery", load.LoadID)
		}
		copied[i] = load
	}
	return &Board{loads: copied}, nil
}

// Seeded returns a board populated with the built-in per-state seed loads.
func Seeded() *Board {
	b, err := New(SeedLoads())
	if err != nil {
		// The seed table is static; a validation failure here is a bug.
		panic(fmt.Sprintf("board: invalid seed data: %v", err))
	}
	return b
}

// Len reports how many loads the board holds.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.loads)
}

// Snapshot returns the board's loads with every pickup advanced to the next
// occurrence of its original weekday on or after referenceDate, keeping the
// original time of day and the pickup-to-delivery duration. The result is a
// pure function of the board contents and referenceDate, so repeated calls
// with the same date produce identical output.
func (b *Board) Snapshot(referenceDate time.Time) []Load {
	if b == nil {
		return nil
	}
	ref := truncateToDay(referenceDate.UTC())
	snapshot := make([]Load, len(b.loads))
	for i, load := range b.loads {
		pickup := load.PickupDatetime.UTC()
		daysAhead := (int(pickup.Weekday()) - int(ref.Weekday()) + 7) % 7
		day := ref.AddDate(0, 0, daysAhead)
		next := time.Date(day.Year(), day.Month(), day.Day(),
			pickup.Hour(), pickup.Minute(), pickup.Second(), 0, time.UTC)
		transit := load.DeliveryDatetime.Sub(load.PickupDatetime)

		load.PickupDatetime = next
		load.DeliveryDatetime = next.Add(transit)
		snapshot[i] = load
	}
	return snapshot
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil counts whole calendar days from the reference date to the load's
// pickup date. Negative values mean the pickup date already passed.
func daysUntil(referenceDate, pickup time.Time) int {
	ref := truncateToDay(referenceDate.UTC())
	day := truncateToDay(pickup.UTC())
	return int(day.Sub(ref).Hours() / 24)
}
