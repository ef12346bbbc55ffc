package analysis

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// DayAggregate is the trade count and win rate for one day of the week.
type DayAggregate struct {
	Day     time.Weekday `json:"-"`
	Name    string       `json:"day"`
	Trades  int          `json:"trades"`
	Wins    int          `json:"wins"`
	WinRate float64      `json:"win_rate"`
}

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ByWeekday groups trades by the weekday of their entry. Trades whose time
// cannot be parsed are skipped and reported in warnings. Days without
// trades are left out.
func ByWeekday(trades []journal.Trade) ([]DayAggregate, []string) {
	var (
		warnings []string
		undated  int
		groups   = make(map[time.Weekday][]journal.Trade)
	)

	for _, t := range trades {
		ts, dated, err := t.EntryTime()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped from weekday stats: %v", err))
			continue
		}
		if !dated {
			undated++
		}
		groups[ts.Weekday()] = append(groups[ts.Weekday()], t)
	}

	if undated > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d trade(s) have no calendar date; their weekday falls on the placeholder date %s and is not meaningful",
			undated, journal.PlaceholderDate.Format(journal.DateLayout)))
	}

	out := []DayAggregate{}
	for _, d := range weekOrder {
		rate, wins, ok := WinRate(groups[d])
		if !ok {
			continue
		}
		out = append(out, DayAggregate{
			Day:     d,
			Name:    d.String(),
			Trades:  len(groups[d]),
			Wins:    wins,
			WinRate: rate,
		})
	}
	return out, warnings
}
