// Package templates renders the negotiation analytics dashboard page.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NameCount pairs a label with how often it appeared.
type NameCount struct {
	Name  string
	Count int
}

// DashboardRow is one negotiation entry in the recent table.
type DashboardRow struct {
	LoggedAt   string
	Commodity  string
	Sentiment  string
	Rounds     int
	FinalPrice float64
	Accepted   bool
}

// DashboardData feeds the analytics page.
type DashboardData struct {
	TotalEntries      int
	AcceptedCount     int
	WinRatePercent    float64
	AverageFinalPrice float64
	AverageRounds     float64
	TopCommodities    []NameCount
	TopSentiments     []NameCount
	Recent            []DashboardRow
}

const dashboardTitle = "Negotiation Performance Dashboard"

var printer = message.NewPrinter(language.AmericanEnglish)

// Dashboard renders the analytics page for the stored negotiation history.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.TotalEntries == 0 {
			return renderEmpty(w)
		}
		return renderMetrics(w, data)
	})
}

func renderEmpty(w io.Writer) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s</title>%s</head>
<body>
<div class="card">
<h1>%s</h1>
<p>No negotiations have been recorded yet. Submit outcomes with the <code>POST /negotiations</code> endpoint to populate the dashboard.</p>
</div>
</body>
</html>`, dashboardTitle, pageStyle, dashboardTitle)
	return err
}

func renderMetrics(w io.Writer, data DashboardData) error {
	if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s</title>%s</head>
<body>
<h1>%s</h1>
<section class="metrics">
`, dashboardTitle, pageStyle, dashboardTitle); err != nil {
		return err
	}

	metrics := []struct{ label, value string }{
		{"Total entries", printer.Sprintf("%d", data.TotalEntries)},
		{"Loads booked", printer.Sprintf("%d (%.1f%% win rate)", data.AcceptedCount, data.WinRatePercent)},
		{"Avg. final price", printer.Sprintf("$%.2f", data.AverageFinalPrice)},
		{"Avg. negotiation rounds", printer.Sprintf("%.1f", data.AverageRounds)},
		{"Top commodities", formatCounts(data.TopCommodities)},
		{"Call sentiment", formatCounts(data.TopSentiments)},
	}
	for _, metric := range metrics {
		if _, err := fmt.Fprintf(w,
			"<div class=\"metric\"><h2>%s</h2><p>%s</p></div>\n",
			templ.EscapeString(metric.label), metric.value); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, `</section>
<section>
<h2>Recent negotiations</h2>
<table>
<thead><tr><th>Logged at (UTC)</th><th>Commodity</th><th>Sentiment</th><th>Rounds</th><th>Final price</th><th>Booked?</th></tr></thead>
<tbody>
`); err != nil {
		return err
	}

	for _, row := range data.Recent {
		booked := "No"
		if row.Accepted {
			booked = "Yes"
		}
		if _, err := fmt.Fprintf(w,
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			templ.EscapeString(row.LoggedAt),
			templ.EscapeString(row.Commodity),
			templ.EscapeString(row.Sentiment),
			row.Rounds,
			printer.Sprintf("$%.2f", row.FinalPrice),
			booked); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</tbody>
</table>
</section>
</body>
</html>`)
	return err
}

func formatCounts(counts []NameCount) string {
	if len(counts) == 0 {
		return "&mdash;"
	}
	out := ""
	for i, count := range counts {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", templ.EscapeString(count.Name), count.Count)
	}
	return out
}

const pageStyle = `<style>
:root { color-scheme: light dark; }
body { font-family: system-ui, sans-serif; margin: 2rem; line-height: 1.5; }
h1 { margin-bottom: 1.5rem; }
.card { padding: 1.5rem; border-radius: 8px; background: #f5f5f5; max-width: 420px; }
.metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; margin-bottom: 2rem; }
.metric { border-radius: 10px; padding: 1.25rem; background: rgba(59, 130, 246, 0.08); }
.metric h2 { font-size: 0.95rem; text-transform: uppercase; letter-spacing: 0.08em; margin: 0 0 0.35rem 0; color: #2563eb; }
.metric p { font-size: 1.5rem; margin: 0; font-weight: 600; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.75rem; border-bottom: 1px solid rgba(148, 163, 184, 0.4); }
th { font-size: 0.85rem; text-transform: uppercase; letter-spacing: 0.08em; color: #475569; }
code { background: rgba(100, 116, 139, 0.15); padding: 0.1rem 0.3rem; border-radius: 4px; }
</style>`
