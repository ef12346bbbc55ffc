package analysis

import "github.com/rustyeddy/tradebook/journal"

// Performance is the outcome of one subset over the trades that satisfy
// every criterion in it.
type Performance struct {
	Subset
	WinRate float64 `json:"win_rate"`
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
}

// WinRate is the percentage of trades with a strictly positive result.
// Flat trades count in the denominator only. ok is false for no trades.
func WinRate(trades []journal.Trade) (rate float64, wins int, ok bool) {
	if len(trades) == 0 {
		return 0, 0, false
	}
	for _, t := range trades {
		if t.Win() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100, wins, true
}

// Matching returns the trades flagged with every criterion in s.
func Matching(s Subset, trades []journal.Trade) []journal.Trade {
	var out []journal.Trade
	for _, t := range trades {
		if t.Criteria.Contains(s.Mask) {
			out = append(out, t)
		}
	}
	return out
}

// Evaluate computes the win rate of s. A subset no trade satisfies has no
// performance and ok is false.
func Evaluate(s Subset, trades []journal.Trade) (Performance, bool) {
	matched := Matching(s, trades)
	rate, wins, ok := WinRate(matched)
	if !ok {
		return Performance{}, false
	}
	return Performance{
		Subset:  s,
		WinRate: rate,
		Trades:  len(matched),
		Wins:    wins,
	}, true
}

// EvaluateAll evaluates each subset in order, dropping the ones without
// matching trades.
func EvaluateAll(subsets []Subset, trades []journal.Trade) []Performance {
	out := make([]Performance, 0, len(subsets))
	for _, s := range subsets {
		if p, ok := Evaluate(s, trades); ok {
			out = append(out, p)
		}
	}
	return out
}
