package analysis

import (
	"fmt"

	"github.com/rustyeddy/tradebook/journal"
)

// Options controls one analysis pass.
type Options struct {
	Basic          []journal.Criterion
	Other          []journal.Criterion
	HighThreshold  float64
	LowThreshold   float64
	InitialBalance float64
}

func DefaultOptions() Options {
	return Options{
		Basic:          journal.DefaultBasicCriteria,
		Other:          journal.DefaultOtherCriteria,
		HighThreshold:  DefaultHighThreshold,
		LowThreshold:   DefaultLowThreshold,
		InitialBalance: journal.DefaultInitialBalance,
	}
}

// Report is everything the presentation layer needs from one pass.
type Report struct {
	Empty   bool    `json:"empty"`
	Summary Summary `json:"summary"`

	Subsets      int           `json:"subsets"`
	Performances []Performance `json:"performances"`
	Best         *Performance  `json:"best,omitempty"`

	HighThreshold float64       `json:"high_threshold"`
	LowThreshold  float64       `json:"low_threshold"`
	High          []Performance `json:"high"`
	Low           []Performance `json:"low"`

	Days     []DayAggregate `json:"days"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Run analyzes a snapshot of the journal. It never fails: problems with
// individual records end up in Report.Warnings.
func Run(trades []journal.Trade, opts Options) Report {
	r := Report{
		Empty:         len(trades) == 0,
		Summary:       Summarize(trades, opts.InitialBalance),
		HighThreshold: opts.HighThreshold,
		LowThreshold:  opts.LowThreshold,
		Performances:  []Performance{},
		High:          []Performance{},
		Low:           []Performance{},
		Days:          []DayAggregate{},
	}
	if r.Empty {
		return r
	}

	if err := journal.VerifyBalances(trades, opts.InitialBalance); err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("balance chain broken: %v", err))
	}

	subsets := Enumerate(opts.Basic, opts.Other)
	r.Subsets = len(subsets)
	if r.Subsets == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"no criteria combinations: %d other criteria, need at least %d", len(opts.Other), ComboSize))
	}

	r.Performances = EvaluateAll(subsets, trades)
	if best, ok := GlobalBest(r.Performances); ok {
		r.Best = &best
	}
	r.High = HighBucket(r.Performances, opts.HighThreshold)
	r.Low = LowBucket(r.Performances, opts.LowThreshold)

	var warnings []string
	r.Days, warnings = ByWeekday(trades)
	r.Warnings = append(r.Warnings, warnings...)
	return r
}
