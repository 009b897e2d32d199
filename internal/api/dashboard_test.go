package api

import (
	"testing"
	"time"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage"
)

func TestBuildDashboardDataEmpty(t *testing.T) {
	t.Parallel()

	data := buildDashboardData(nil)
	if data.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d, want 0", data.TotalEntries)
	}
	if len(data.Recent) != 0 {
		t.Errorf("Recent = %d rows, want 0", len(data.Recent))
	}
}

func TestBuildDashboardDataAggregates(t *testing.T) {
	t.Parallel()

	loggedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	events := []storage.NegotiationEvent{
		{LoadAccepted: true, FinalPrice: 2000, TotalNegotiations: 2, Commodity: "Seafood", CallSentiment: "Positive", CreatedAt: loggedAt},
		{LoadAccepted: true, FinalPrice: 1600, TotalNegotiations: 1, Commodity: "Seafood", CallSentiment: "Positive", CreatedAt: loggedAt},
		{LoadAccepted: false, FinalPrice: 1800, TotalNegotiations: 3, Commodity: "Cheese", CallSentiment: "Negative", CreatedAt: loggedAt},
		{LoadAccepted: true, FinalPrice: 2200, TotalNegotiations: 2, Commodity: "Steel Beams", CallSentiment: "Neutral", CreatedAt: loggedAt},
	}

	data := buildDashboardData(events)
	if data.TotalEntries != 4 {
		t.Errorf("TotalEntries = %d, want 4", data.TotalEntries)
	}
	if data.AcceptedCount != 3 {
		t.Errorf("AcceptedCount = %d, want 3", data.AcceptedCount)
	}
	if data.WinRatePercent != 75 {
		t.Errorf("WinRatePercent = %v, want 75", data.WinRatePercent)
	}
	if data.AverageFinalPrice != 1900 {
		t.Errorf("AverageFinalPrice = %v, want 1900", data.AverageFinalPrice)
	}
	if data.AverageRounds != 2 {
		t.Errorf("AverageRounds = %v, want 2", data.AverageRounds)
	}
	if len(data.TopCommodities) != 3 {
		t.Fatalf("TopCommodities = %d entries, want 3", len(data.TopCommodities))
	}
	if data.TopCommodities[0].Name != "Seafood" || data.TopCommodities[0].Count != 2 {
		t.Errorf("top commodity = %+v, want Seafood (2)", data.TopCommodities[0])
	}
	if data.Recent[0].LoggedAt != "2026-03-02T10:00:00Z" {
		t.Errorf("LoggedAt = %q", data.Recent[0].LoggedAt)
	}
}

func TestTopCountsBreaksTiesByName(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"Cheese": 1, "Apples": 1, "Beams": 1, "Dairy": 1}
	top := topCounts(counts, 3)
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}
	if top[0].Name != "Apples" || top[1].Name != "Beams" || top[2].Name != "Cheese" {
		t.Errorf("top = %+v, want alphabetical tie-break", top)
	}
}
