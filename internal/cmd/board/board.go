// Package board implements the load-board snapshot CLI.
package board

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	loadboard "github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
)

// topListLimit caps the origin-state and highest-paying listings.
const topListLimit = 5

var printer = message.NewPrinter(language.AmericanEnglish)

// NewApp builds the board CLI writing its report to out.
func NewApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "board",
		Usage:  "Inspect the seeded load board",
		Writer: out,
		Commands: []*cli.Command{
			snapshotCmd(out),
		},
	}
}

func snapshotCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Print the load board rolled forward to a reference date",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "reference date (YYYY-MM-DD, defaults to today)",
			},
		},
		Action: func(ctx *cli.Context) error {
			referenceDate := time.Now().UTC()
			if raw := ctx.String("date"); raw != "" {
				parsed, err := time.Parse("2006-01-02", raw)
				if err != nil {
					return fmt.Errorf("invalid -date %q: %w", raw, err)
				}
				referenceDate = parsed
			}
			return writeSnapshot(out, loadboard.Seeded(), referenceDate)
		},
	}
}

func writeSnapshot(out io.Writer, b *loadboard.Board, referenceDate time.Time) error {
	loads := b.Snapshot(referenceDate)
	if len(loads) == 0 {
		_, err := fmt.Fprintln(out, "load board is empty")
		return err
	}

	fmt.Fprintf(out, "Load board snapshot for %s (%d loads)\n\n",
		referenceDate.Format("2006-01-02"), len(loads))

	writeEquipmentMix(out, loads)
	writeTopOriginStates(out, loads)
	writeUpcomingDepartures(out, loads, referenceDate)
	writeHighestPaying(out, loads)
	return nil
}

func writeEquipmentMix(out io.Writer, loads []loadboard.Load) {
	counts := make(map[string]int)
	for _, load := range loads {
		counts[load.EquipmentType]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintln(out, "Equipment mix:")
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s %d\n", name, counts[name])
	}
	fmt.Fprintln(out)
}

func writeTopOriginStates(out io.Writer, loads []loadboard.Load) {
	counts := make(map[string]int)
	for _, load := range loads {
		if state := loadboard.NormalizeState(load.Origin); state != "" {
			counts[state]++
		}
	}
	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool {
		if counts[states[i]] != counts[states[j]] {
			return counts[states[i]] > counts[states[j]]
		}
		return states[i] < states[j]
	})
	if len(states) > topListLimit {
		states = states[:topListLimit]
	}

	fmt.Fprintln(out, "Top origin states:")
	for _, state := range states {
		region := loadboard.RegionForState(state)
		fmt.Fprintf(out, "  %s (%s): %d\n", state, region, counts[state])
	}
	fmt.Fprintln(out)
}

func writeUpcomingDepartures(out io.Writer, loads []loadboard.Load, referenceDate time.Time) {
	upcoming := make([]loadboard.Load, len(loads))
	copy(upcoming, loads)
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].PickupDatetime.Before(upcoming[j].PickupDatetime)
	})
	if len(upcoming) > topListLimit {
		upcoming = upcoming[:topListLimit]
	}

	fmt.Fprintln(out, "Next departures:")
	for _, load := range upcoming {
		days := int(load.PickupDatetime.Sub(referenceDate).Hours() / 24)
		fmt.Fprintf(out, "  %s  %s -> %s  %s (in %dd)\n",
			load.LoadID, load.Origin, load.Destination,
			load.PickupDatetime.Format("Mon 2006-01-02 15:04"), days)
	}
	fmt.Fprintln(out)
}

func writeHighestPaying(out io.Writer, loads []loadboard.Load) {
	paying := make([]loadboard.Load, len(loads))
	copy(paying, loads)
	sort.SliceStable(paying, func(i, j int) bool {
		return paying[i].LoadboardRate > paying[j].LoadboardRate
	})
	if len(paying) > topListLimit {
		paying = paying[:topListLimit]
	}

	fmt.Fprintln(out, "Highest-paying loads:")
	for _, load := range paying {
		ratePerMile := ""
		if load.Miles > 0 {
			ratePerMile = printer.Sprintf(" ($%.2f/mi)", load.LoadboardRate/float64(load.Miles))
		}
		fmt.Fprintf(out, "  %s  %s  %s%s  %s\n",
			load.LoadID,
			printer.Sprintf("$%.2f", load.LoadboardRate),
			strings.TrimSpace(load.EquipmentType),
			ratePerMile,
			load.CommodityType)
	}
}
