package board

import (
	"testing"
	"time"
)

func makeLoad(id, origin, equipment string, pickup time.Time, rate float64) Load {
	return Load{
		LoadID:           id,
		Origin:           origin,
		Destination:      "Somewhere, XX",
		PickupDatetime:   pickup,
		DeliveryDatetime: pickup.Add(48 * time.Hour),
		EquipmentType:    equipment,
		LoadboardRate:    rate,
		Weight:           30000,
		CommodityType:    "General Freight",
		NumOfPieces:      12,
		Miles:            500,
		Dimensions:       "53ft trailer",
	}
}

func TestNewRejectsDuplicateLoadIDs(t *testing.T) {
	t.Parallel()

	pickup := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	_, err := New([]Load{
		makeLoad("L-1", "Dallas, TX", "Dry Van", pickup, 1000),
		makeLoad("L-1", "Miami, FL", "Reefer", pickup, 1200),
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewRejectsPickupAfterDelivery(t *testing.T) {
	t.Parallel()

	pickup := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	load := makeLoad("L-1", "Dallas, TX", "Dry Van", pickup, 1000)
	load.DeliveryDatetime = pickup.Add(-time.Hour)
	if _, err := New([]Load{load}); err == nil {
		t.Fatal("expected pickup ordering error")
	}
}

func TestSnapshotPreservesWeekdayAndNeverReturnsPastDates(t *testing.T) {
	t.Parallel()

	b := Seeded()
	ref := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	refDate := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	originals := SeedLoads()
	snapshot := b.Snapshot(ref)
	if len(snapshot) != len(originals) {
		t.Fatalf("snapshot length = %d, want %d", len(snapshot), len(originals))
	}

	for i, load := range snapshot {
		if got, want := load.PickupDatetime.Weekday(), originals[i].PickupDatetime.Weekday(); got != want {
			t.Fatalf("load %s pickup weekday = %v, want %v", load.LoadID, got, want)
		}
		if load.PickupDatetime.Before(refDate) {
			t.Fatalf("load %s pickup %v precedes reference date %v", load.LoadID, load.PickupDatetime, refDate)
		}
		gotTransit := load.DeliveryDatetime.Sub(load.PickupDatetime)
		wantTransit := originals[i].DeliveryDatetime.Sub(originals[i].PickupDatetime)
		if gotTransit != wantTransit {
			t.Fatalf("load %s transit = %v, want %v", load.LoadID, gotTransit, wantTransit)
		}
	}
}

func TestSnapshotIsIdempotentPerReferenceDate(t *testing.T) {
	t.Parallel()

	b := Seeded()
	ref := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)

	first := b.Snapshot(ref)
	second := b.Snapshot(ref)
	for i := range first {
		if !first[i].PickupDatetime.Equal(second[i].PickupDatetime) {
			t.Fatalf("load %s pickup differs across snapshots: %v vs %v",
				first[i].LoadID, first[i].PickupDatetime, second[i].PickupDatetime)
		}
		if !first[i].DeliveryDatetime.Equal(second[i].DeliveryDatetime) {
			t.Fatalf("load %s delivery differs across snapshots", first[i].LoadID)
		}
	}
}

func TestSnapshotKeepsSameDayPickup(t *testing.T) {
	t.Parallel()

	// Reference date falls on the same weekday as the pickup: the load must
	// stay on the reference date, not jump a week ahead.
	pickup := time.Date(2024, time.May, 6, 8, 0, 0, 0, time.UTC) // Monday
	b, err := New([]Load{makeLoad("L-1", "Dallas, TX", "Dry Van", pickup, 1000)})
	if err != nil {
		t.Fatalf("new board: %v", err)
	}

	ref := time.Date(2026, time.March, 2, 22, 0, 0, 0, time.UTC) // Monday
	snapshot := b.Snapshot(ref)
	want := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	if !snapshot[0].PickupDatetime.Equal(want) {
		t.Fatalf("pickup = %v, want %v", snapshot[0].PickupDatetime, want)
	}
}
