package analysis

import "github.com/rustyeddy/tradebook/journal"

func trade(result float64, cs ...journal.Criterion) journal.Trade {
	return journal.Trade{
		Pair:     "EUR/USD",
		Side:     journal.Buy,
		Time:     "10:00:00",
		Trend1D:  journal.Bullish,
		Trend1H:  journal.Bullish,
		Trend15m: journal.Bullish,
		Criteria: journal.NewCriteriaSet(cs...),
		Result:   result,
	}
}

// chain stamps sequence numbers and balances the way a store would.
func chain(trades ...journal.Trade) []journal.Trade {
	var out []journal.Trade
	for _, t := range trades {
		out = append(out, journal.Chain(out, t, journal.DefaultInitialBalance))
	}
	return out
}

func all() []journal.Criterion {
	return journal.AllCriteria()
}

func perf(name string, rate float64) Performance {
	return Performance{Subset: Subset{Name: name}, WinRate: rate}
}
