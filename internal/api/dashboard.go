package api

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/api/templates"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/httpx"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage"
)

// topCountLimit caps the "top commodities" and sentiment breakdowns.
const topCountLimit = 3

// recentRowLimit caps the recent-negotiations table.
const recentRowLimit = 25

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListNegotiations(httpx.RequestContext(r))
	if err != nil {
		log.Printf("dashboard negotiations: %v", err)
		http.Error(w, "Failed to load dashboard data.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(buildDashboardData(events)).Render(r.Context(), w); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

func buildDashboardData(events []storage.NegotiationEvent) templates.DashboardData {
	data := templates.DashboardData{TotalEntries: len(events)}
	if len(events) == 0 {
		return data
	}

	var priceSum, roundSum float64
	commodities := make(map[string]int)
	sentiments := make(map[string]int)
	for _, event := range events {
		if event.LoadAccepted {
			data.AcceptedCount++
		}
		priceSum += event.FinalPrice
		roundSum += float64(event.TotalNegotiations)
		commodities[event.Commodity]++
		sentiments[event.CallSentiment]++
	}

	total := float64(len(events))
	data.WinRatePercent = float64(data.AcceptedCount) / total * 100
	data.AverageFinalPrice = priceSum / total
	data.AverageRounds = roundSum / total
	data.TopCommodities = topCounts(commodities, topCountLimit)
	data.TopSentiments = topCounts(sentiments, topCountLimit)

	rows := events
	if len(rows) > recentRowLimit {
		rows = rows[:recentRowLimit]
	}
	for _, event := range rows {
		data.Recent = append(data.Recent, templates.DashboardRow{
			LoggedAt:   event.CreatedAt.UTC().Format(time.RFC3339),
			Commodity:  event.Commodity,
			Sentiment:  event.CallSentiment,
			Rounds:     event.TotalNegotiations,
			FinalPrice: event.FinalPrice,
			Accepted:   event.LoadAccepted,
		})
	}
	return data
}

// topCounts returns the limit most frequent entries, breaking count ties by
// name so the output is stable.
func topCounts(counts map[string]int, limit int) []templates.NameCount {
	out := make([]templates.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, templates.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
